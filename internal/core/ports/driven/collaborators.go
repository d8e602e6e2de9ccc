package driven

import (
	"context"

	"github.com/hireloop/screener/internal/core/domain"
)

// Mailer sends notification emails through an external provider.
type Mailer interface {
	// Send delivers the message and returns the provider message ID.
	Send(ctx context.Context, msg domain.EmailMessage) (string, error)
}

// MeetingScheduler creates calendar events with video-conferencing links
// through an external provider.
type MeetingScheduler interface {
	// Schedule creates the event, invites attendees and returns the
	// created-event descriptor with a joinable meeting link.
	Schedule(ctx context.Context, meeting domain.Meeting) (*domain.ScheduledMeeting, error)
}
