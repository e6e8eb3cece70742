package experience

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/prateek9389/prateekportfolio/internal/store"
)

type Experience struct {
	ID          string    `json:"id"`
	Company     string    `json:"company"`
	Role        string    `json:"role"`
	Location    string    `json:"location"`
	Duration    string    `json:"duration"`
	Description string    `json:"description"`
	IsCurrent   bool      `json:"isCurrent"`
	Website     string    `json:"website"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var ErrCompanyAndRoleRequired = errors.New("experience company and role are required")

func (e *Experience) Validate() error {
	if strings.TrimSpace(e.Company) == "" || strings.TrimSpace(e.Role) == "" {
		return ErrCompanyAndRoleRequired
	}
	return nil
}

func FromDocument(doc store.Document) *Experience {
	e := &Experience{}
	if b, err := json.Marshal(doc.Fields); err == nil {
		_ = json.Unmarshal(b, e)
	}
	e.ID = doc.ID
	e.CreatedAt = doc.CreatedAt
	e.UpdatedAt = doc.UpdatedAt
	return e
}

func (e *Experience) Fields() map[string]any {
	return map[string]any{
		"company":     e.Company,
		"role":        e.Role,
		"location":    e.Location,
		"duration":    e.Duration,
		"description": e.Description,
		"isCurrent":   e.IsCurrent,
		"website":     e.Website,
	}
}
