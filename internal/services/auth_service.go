package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nenexus/nexus-backend/internal/common"
	"github.com/nenexus/nexus-backend/internal/dtos"
	"github.com/nenexus/nexus-backend/internal/models"
	"github.com/nenexus/nexus-backend/internal/security"
)

type AuthService struct {
	DB     *gorm.DB
	Tokens *security.TokenProvider
	Mailer Mailer
}

func NewAuthService(db *gorm.DB, tokens *security.TokenProvider, mailer Mailer) *AuthService {
	return &AuthService{DB: db, Tokens: tokens, Mailer: mailer}
}

func (s *AuthService) Register(req *dtos.RegisterRequest) (*dtos.AuthResponse, error) {
	var existing models.User
	err := s.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return nil, common.NewError(common.CodeConflict, "email already registered", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NewError(common.CodeInternal, "failed to look up user", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to hash password", err)
	}

	role := models.RoleCandidate
	if req.Role != "" {
		role = models.Role(req.Role)
	}
	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     role,
		Status:   models.UserActive,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, err
	}

	token, _, err := s.Tokens.Generate(user.ID, string(user.Role))
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to issue token", err)
	}

	s.Mailer.SendWelcome(user.Email, user.Name)

	return &dtos.AuthResponse{Token: token, User: user.Sanitized()}, nil
}

func (s *AuthService) Login(req *dtos.LoginRequest) (*dtos.AuthResponse, error) {
	var user models.User
	err := s.DB.Where("email = ? AND status = ?", req.Email, models.UserActive).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewError(common.CodeUnauthorized, "invalid credentials", nil)
		}
		return nil, common.NewError(common.CodeInternal, "failed to look up user", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, common.NewError(common.CodeUnauthorized, "invalid credentials", nil)
	}

	token, _, err := s.Tokens.Generate(user.ID, string(user.Role))
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to issue token", err)
	}
	return &dtos.AuthResponse{Token: token, User: user.Sanitized()}, nil
}
