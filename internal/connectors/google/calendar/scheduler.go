// Package calendar schedules interview meetings through the Google
// Calendar API, with a Meet conference attached to each event.
package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/api/calendar/v3"

	"github.com/hireloop/screener/internal/connectors/google"
	"github.com/hireloop/screener/internal/core/domain"
	"github.com/hireloop/screener/internal/core/ports/driven"
	"github.com/hireloop/screener/internal/logger"
)

// Ensure Scheduler implements the interface.
var _ driven.MeetingScheduler = (*Scheduler)(nil)

// Reminder lead times for created events.
const (
	emailReminderMinutes = 24 * 60
	popupReminderMinutes = 15
)

// Scheduler creates events on the authenticated user's primary calendar.
type Scheduler struct {
	service *calendar.Service
	limiter *google.RateLimiter
}

// NewScheduler creates a Calendar scheduler around an authenticated service.
func NewScheduler(service *calendar.Service) *Scheduler {
	return &Scheduler{
		service: service,
		limiter: google.NewRateLimiter(google.ServiceCalendar),
	}
}

// Schedule inserts the meeting on the primary calendar, invites all
// attendees and requests a Meet conference. Attendees are notified by
// Calendar itself.
func (s *Scheduler) Schedule(ctx context.Context, meeting domain.Meeting) (*domain.ScheduledMeeting, error) {
	if err := meeting.Validate(); err != nil {
		return nil, err
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	event := buildEvent(meeting, uuid.New().String())
	logger.Debug("Creating event %q with %d attendees", meeting.Summary, len(meeting.Attendees))

	created, err := s.service.Events.Insert("primary", event).
		ConferenceDataVersion(1).
		SendUpdates("all").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("calendar insert: %w: %v", domain.ErrExternalService, google.WrapError(err))
	}

	logger.Info("Event created: %s", created.HtmlLink)
	return &domain.ScheduledMeeting{
		EventID:      created.Id,
		MeetLink:     created.HangoutLink,
		CalendarLink: created.HtmlLink,
	}, nil
}

// buildEvent maps a meeting onto the Calendar API event body. requestID
// keys the conference creation so retries do not mint extra conferences.
func buildEvent(meeting domain.Meeting, requestID string) *calendar.Event {
	attendees := make([]*calendar.EventAttendee, len(meeting.Attendees))
	for i, email := range meeting.Attendees {
		attendees[i] = &calendar.EventAttendee{Email: email}
	}

	return &calendar.Event{
		Summary:     meeting.Summary,
		Description: meeting.Description,
		Start: &calendar.EventDateTime{
			DateTime: meeting.Start.Format(time.RFC3339),
			TimeZone: meeting.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: meeting.End.Format(time.RFC3339),
			TimeZone: meeting.Timezone,
		},
		Attendees: attendees,
		ConferenceData: &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId: requestID,
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{
					Type: "hangoutsMeet",
				},
			},
		},
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "email", Minutes: emailReminderMinutes},
				{Method: "popup", Minutes: popupReminderMinutes},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}
}
