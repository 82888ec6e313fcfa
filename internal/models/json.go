package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// SQLite has no native JSON column, so the loosely structured fields are
// stored as TEXT and (un)marshalled through these types.

func jsonValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func jsonScan(src, dst interface{}) error {
	switch s := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(s, dst)
	case string:
		return json.Unmarshal([]byte(s), dst)
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}
}

type StringList []string

func (l StringList) Value() (driver.Value, error) { return jsonValue([]string(l)) }
func (l *StringList) Scan(src interface{}) error  { return jsonScan(src, l) }

// RecordList holds free-form records such as a user's experience and
// education entries.
type RecordList []map[string]interface{}

func (l RecordList) Value() (driver.Value, error) { return jsonValue([]map[string]interface{}(l)) }
func (l *RecordList) Scan(src interface{}) error  { return jsonScan(src, l) }

type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) { return jsonValue(map[string]interface{}(m)) }
func (m *JSONMap) Scan(src interface{}) error  { return jsonScan(src, m) }

type Note struct {
	Content   string    `json:"content"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type NoteList []Note

func (l NoteList) Value() (driver.Value, error) { return jsonValue([]Note(l)) }
func (l *NoteList) Scan(src interface{}) error  { return jsonScan(src, l) }

type Interview struct {
	Date      time.Time `json:"date"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	Location  string    `json:"location,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type InterviewList []Interview

func (l InterviewList) Value() (driver.Value, error) { return jsonValue([]Interview(l)) }
func (l *InterviewList) Scan(src interface{}) error  { return jsonScan(src, l) }

type Feedback struct {
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type FeedbackList []Feedback

func (l FeedbackList) Value() (driver.Value, error) { return jsonValue([]Feedback(l)) }
func (l *FeedbackList) Scan(src interface{}) error  { return jsonScan(src, l) }

type Salary struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
	IsPublic bool   `json:"is_public"`
}

func (s Salary) Value() (driver.Value, error) { return jsonValue(s) }
func (s *Salary) Scan(src interface{}) error  { return jsonScan(src, s) }

type Money struct {
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
}

func (m Money) Value() (driver.Value, error) { return jsonValue(m) }
func (m *Money) Scan(src interface{}) error  { return jsonScan(src, m) }
