package gmail

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/screener/internal/core/domain"
)

func TestBuildRawMessage(t *testing.T) {
	msg := domain.EmailMessage{
		To:      "candidate@example.com",
		From:    "hr@example.com",
		Subject: "Interview invitation",
		Body:    "Hello,\n\nWe would like to schedule an interview.",
	}

	raw := buildRawMessage(msg)

	// Gmail expects unpadded base64url.
	assert.NotContains(t, raw, "=")
	assert.NotContains(t, raw, "+")
	assert.NotContains(t, raw, "/")

	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	require.NoError(t, err)
	text := string(decoded)

	assert.Contains(t, text, "From: hr@example.com\r\n")
	assert.Contains(t, text, "To: candidate@example.com\r\n")
	assert.Contains(t, text, "Subject: Interview invitation\r\n")
	assert.Contains(t, text, "Content-Type: text/plain; charset=\"UTF-8\"\r\n")

	// Headers and body are separated by a blank line.
	parts := strings.SplitN(text, "\r\n\r\n", 2)
	require.Len(t, parts, 2)
	assert.Equal(t, "Hello,\n\nWe would like to schedule an interview.", parts[1])
}

func TestBuildRawMessage_NoFrom(t *testing.T) {
	raw := buildRawMessage(domain.EmailMessage{
		To:      "candidate@example.com",
		Subject: "Update",
		Body:    "Short note.",
	})

	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	require.NoError(t, err)

	// Gmail fills in the authenticated sender when From is omitted.
	assert.NotContains(t, string(decoded), "From:")
	assert.Contains(t, string(decoded), "To: candidate@example.com\r\n")
}
