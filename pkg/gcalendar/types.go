package gcalendar

import "time"

// dateLayout is the layout of all-day event dates.
const dateLayout = "2006-01-02"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	Attendees   []string // email addresses
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
	Timezone    string // e.g. "Asia/Ho_Chi_Minh"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
	Location    string
	Attendees   []string
	Recurrence  []string // RRULE/EXDATE lines as returned by the API
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID   string
	TimeMin      time.Time
	TimeMax      time.Time
	MaxResults   int64
	SingleEvents bool // let the API expand recurring events into instances
}
