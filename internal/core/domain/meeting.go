package domain

import (
	"fmt"
	"time"
)

// EmailMessage is an outbound notification email.
type EmailMessage struct {
	To      string
	From    string
	Subject string
	Body    string
}

// Validate checks the message has the fields the mail provider requires.
func (m EmailMessage) Validate() error {
	if m.To == "" {
		return fmt.Errorf("%w: recipient is required", ErrInvalidInput)
	}
	if m.Subject == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidInput)
	}
	return nil
}

// Meeting describes a meeting to be created on the calendar provider.
type Meeting struct {
	// Summary is the meeting title.
	Summary string

	// Description is the meeting body text.
	Description string

	// Start and End bound the meeting; End must follow Start.
	Start time.Time
	End   time.Time

	// Attendees are invitee email addresses.
	Attendees []string

	// Timezone is the IANA zone name used for the event times.
	Timezone string
}

// Validate checks the meeting definition is schedulable.
func (m Meeting) Validate() error {
	if m.Summary == "" {
		return fmt.Errorf("%w: meeting summary is required", ErrInvalidInput)
	}
	if m.Start.IsZero() || m.End.IsZero() {
		return fmt.Errorf("%w: meeting start and end are required", ErrInvalidInput)
	}
	if !m.End.After(m.Start) {
		return fmt.Errorf("%w: meeting end must be after start", ErrInvalidInput)
	}
	if len(m.Attendees) == 0 {
		return fmt.Errorf("%w: at least one attendee is required", ErrInvalidInput)
	}
	return nil
}

// ScheduledMeeting is the provider's descriptor for a created event.
type ScheduledMeeting struct {
	// EventID is the provider event identifier.
	EventID string

	// MeetLink is the joinable video-conference URL.
	MeetLink string

	// CalendarLink is the viewable calendar page URL.
	CalendarLink string
}
