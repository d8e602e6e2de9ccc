// Package gmail sends candidate notification emails through the Gmail API.
package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"google.golang.org/api/gmail/v1"

	"github.com/hireloop/screener/internal/connectors/google"
	"github.com/hireloop/screener/internal/core/domain"
	"github.com/hireloop/screener/internal/core/ports/driven"
	"github.com/hireloop/screener/internal/logger"
)

// Ensure Sender implements the interface.
var _ driven.Mailer = (*Sender)(nil)

// Sender delivers email through the authenticated user's Gmail account.
type Sender struct {
	service *gmail.Service
	limiter *google.RateLimiter
}

// NewSender creates a Gmail sender around an authenticated service.
func NewSender(service *gmail.Service) *Sender {
	return &Sender{
		service: service,
		limiter: google.NewRateLimiter(google.ServiceGmail),
	}
}

// Send delivers the message from the authenticated account and returns
// the Gmail message ID.
func (s *Sender) Send(ctx context.Context, msg domain.EmailMessage) (string, error) {
	if err := msg.Validate(); err != nil {
		return "", err
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	raw := buildRawMessage(msg)
	logger.Debug("Sending email to %s (%d bytes raw)", msg.To, len(raw))

	sent, err := s.service.Users.Messages.Send("me", &gmail.Message{Raw: raw}).
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("gmail send: %w: %v", domain.ErrExternalService, google.WrapError(err))
	}

	logger.Info("Email sent, message ID %s", sent.Id)
	return sent.Id, nil
}

// buildRawMessage composes an RFC 2822 message and encodes it the way
// the Gmail API expects, base64url without padding.
func buildRawMessage(msg domain.EmailMessage) string {
	var b strings.Builder
	if msg.From != "" {
		fmt.Fprintf(&b, "From: %s\r\n", msg.From)
	}
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)

	return base64.RawURLEncoding.EncodeToString([]byte(b.String()))
}
