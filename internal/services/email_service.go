package services

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"github.com/nenexus/nexus-backend/internal/config"
)

// Mailer is the notification surface the request path depends on. Every
// send is best-effort: implementations must never surface failures to the
// caller.
type Mailer interface {
	SendApplicationReceived(to, jobTitle, company string)
	SendStatusChanged(to, jobTitle, status string)
	SendWelcome(to, name string)
}

type EmailService struct {
	dialer  *gomail.Dialer
	from    string
	enabled bool
}

// NewEmailService builds the SMTP mailer. When no host is configured the
// service degrades to logged no-ops instead of failing requests.
func NewEmailService(cfg config.SMTPConfig) *EmailService {
	s := &EmailService{from: cfg.From, enabled: cfg.MailEnabled()}
	if s.enabled {
		s.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	} else {
		logrus.Warn("SMTP not configured, email notifications disabled")
	}
	return s
}

func (s *EmailService) SendApplicationReceived(to, jobTitle, company string) {
	s.send(to, "Application Received",
		fmt.Sprintf("Your application for %s at %s has been received. We'll notify you of any updates to your application status.", jobTitle, company))
}

func (s *EmailService) SendStatusChanged(to, jobTitle, status string) {
	s.send(to, "Application Update",
		fmt.Sprintf("Your application for %s is now %s.", jobTitle, status))
}

func (s *EmailService) SendWelcome(to, name string) {
	s.send(to, "Welcome to NE Nexus",
		fmt.Sprintf("Hi %s, we're excited to have you on board. Start exploring job opportunities or post your first job listing today!", name))
}

// send dispatches in a detached goroutine; delivery failures are logged and
// never propagated.
func (s *EmailService) send(to, subject, body string) {
	if !s.enabled {
		logrus.WithFields(logrus.Fields{"to": to, "subject": subject}).Debug("mail disabled, skipping send")
		return
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	go func() {
		if err := s.dialer.DialAndSend(msg); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{"to": to, "subject": subject}).Error("failed to send email")
		}
	}()
}
