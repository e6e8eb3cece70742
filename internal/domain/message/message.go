package message

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/prateek9389/prateekportfolio/internal/store"
)

// Message is a contact-form submission. Created by anonymous visitors,
// mutated (read flag) and deleted only from the admin console.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

var ErrFieldsRequired = errors.New("name, email, subject and message are required")

func (m *Message) Validate() error {
	for _, v := range []string{m.Name, m.Email, m.Subject, m.Message} {
		if strings.TrimSpace(v) == "" {
			return ErrFieldsRequired
		}
	}
	return nil
}

func FromDocument(doc store.Document) *Message {
	m := &Message{}
	if b, err := json.Marshal(doc.Fields); err == nil {
		_ = json.Unmarshal(b, m)
	}
	m.ID = doc.ID
	m.CreatedAt = doc.CreatedAt
	return m
}

// Fields returns the document written on submission. New messages always
// start unread.
func (m *Message) Fields() map[string]any {
	return map[string]any{
		"name":    m.Name,
		"email":   m.Email,
		"subject": m.Subject,
		"message": m.Message,
		"read":    false,
	}
}
