package contact

import (
	"context"
	"fmt"
	"html"
	"io"
	"log"
	"net/mail"
	"strings"

	"github.com/SahakyanGor98/iqos/internal/domain"
	"github.com/SahakyanGor98/iqos/internal/email"
	contactrepo "github.com/SahakyanGor98/iqos/internal/repository/contact"
)

const (
	msgInvalidForm  = "Неверные данные формы"
	msgSubmitFailed = "Ошибка при отправке сообщения"

	contactFrom = "IQOS Contact <onboarding@resend.dev>"
)

type Service struct {
	repo          contactrepo.Repository
	mail          email.Sender
	internalEmail string
	logger        *log.Logger
}

func New(repo contactrepo.Repository, mail email.Sender, internalEmail string, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, mail: mail, internalEmail: internalEmail, logger: logger}
}

type Submission struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Submit validates the form, persists the message with a "new" status and
// sends one best-effort internal notification.
func (s *Service) Submit(ctx context.Context, in Submission) Result {
	if !valid(in) {
		return Result{Success: false, Error: msgInvalidForm}
	}

	created, err := s.repo.Create(ctx, domain.ContactMessage{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Message: strings.TrimSpace(in.Message),
		Status:  domain.ContactStatusNew,
	})
	if err != nil {
		s.logger.Printf("contact: create message: %v", err)
		return Result{Success: false, Error: msgSubmitFailed}
	}

	s.notify(ctx, created)
	return Result{Success: true}
}

func valid(in Submission) bool {
	if len(strings.TrimSpace(in.Name)) < 2 {
		return false
	}
	if len(strings.TrimSpace(in.Phone)) < 10 {
		return false
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(in.Email)); err != nil {
		return false
	}
	return len(strings.TrimSpace(in.Message)) >= 10
}

func (s *Service) notify(ctx context.Context, m *domain.ContactMessage) {
	if s.mail == nil || s.internalEmail == "" {
		s.logger.Printf("contact: email sender or internal address not configured, skipping notification")
		return
	}

	msg := email.Message{
		From:    contactFrom,
		To:      []string{s.internalEmail},
		Subject: fmt.Sprintf("Новое сообщение от %s", m.Name),
		HTML: fmt.Sprintf(
			`<h1>Новое сообщение с формы контактов</h1>
<p><strong>Имя:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Телефон:</strong> %s</p>
<h2>Сообщение:</h2>
<p>%s</p>`,
			html.EscapeString(m.Name),
			html.EscapeString(m.Email),
			html.EscapeString(m.Phone),
			html.EscapeString(m.Message),
		),
	}
	if err := s.mail.Send(ctx, msg); err != nil {
		s.logger.Printf("contact: notification for message %d: %v", m.ID, err)
	}
}
