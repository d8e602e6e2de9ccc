package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hireloop/screener/internal/core/domain"
)

// Accepted layouts for --start, tried in order.
var startLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

var (
	scheduleSummary     string
	scheduleDescription string
	scheduleStart       string
	scheduleDuration    time.Duration
	scheduleAttendees   []string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Schedule an interview with a Meet link",
	Long: `Creates an event on the authenticated user's primary calendar,
invites all attendees, attaches a Google Meet conference and lets
Calendar notify everyone. Times without an offset are interpreted in the
configured timezone.`,
	Args: cobra.NoArgs,
	RunE: runSchedule,
}

func init() {
	scheduleCmd.Flags().StringVar(&scheduleSummary, "summary", "", "event title")
	scheduleCmd.Flags().StringVar(&scheduleDescription, "description", "", "event description")
	scheduleCmd.Flags().StringVar(&scheduleStart, "start", "", "start time (e.g. 2006-01-02 15:04)")
	scheduleCmd.Flags().DurationVar(&scheduleDuration, "duration", 30*time.Minute, "meeting length")
	scheduleCmd.Flags().StringSliceVar(&scheduleAttendees, "attendee", nil, "attendee email (repeatable)")
	_ = scheduleCmd.MarkFlagRequired("summary")
	_ = scheduleCmd.MarkFlagRequired("start")
	_ = scheduleCmd.MarkFlagRequired("attendee")
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, _ []string) error {
	start, err := parseStart(scheduleStart, cfg.Google.Timezone)
	if err != nil {
		return err
	}

	if err := ensureScheduler(cmd); err != nil {
		return err
	}

	meeting := domain.Meeting{
		Summary:     scheduleSummary,
		Description: scheduleDescription,
		Start:       start,
		End:         start.Add(scheduleDuration),
		Attendees:   scheduleAttendees,
		Timezone:    cfg.Google.Timezone,
	}

	scheduled, err := scheduler.Schedule(cmd.Context(), meeting)
	if err != nil {
		return fmt.Errorf("scheduling failed: %w", err)
	}

	cmd.Printf("Event created: %s\n", scheduled.EventID)
	if scheduled.MeetLink != "" {
		cmd.Printf("Meet link:     %s\n", scheduled.MeetLink)
	}
	if scheduled.CalendarLink != "" {
		cmd.Printf("Calendar:      %s\n", scheduled.CalendarLink)
	}
	return nil
}

// parseStart parses the start flag, interpreting offset-less layouts in
// the given timezone.
func parseStart(value, timezone string) (time.Time, error) {
	loc := time.Local
	if timezone != "" {
		parsed, err := time.LoadLocation(timezone)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
		}
		loc = parsed
	}

	for _, layout := range startLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse start time %q", value)
}
