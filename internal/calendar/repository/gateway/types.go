package gateway

// Error code the gateway sends when the user has no connected provider.
const codeNoIntegration = "NO_ACTIVE_INTEGRATION"

type eventDTO struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	AllDay      bool     `json:"all_day"`
	Location    string   `json:"location,omitempty"`
	Attendees   []string `json:"attendees,omitempty"`
	Recurrence  string   `json:"recurrence,omitempty"`
	Provider    string   `json:"provider,omitempty"`
	HTMLLink    string   `json:"html_link,omitempty"`
}

type listEventsResp struct {
	Success bool       `json:"success"`
	Data    []eventDTO `json:"data"`
	Code    string     `json:"code,omitempty"`
	Error   string     `json:"error,omitempty"`
}

type createEventReq struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	AllDay      bool     `json:"all_day"`
	Location    string   `json:"location,omitempty"`
	Attendees   []string `json:"attendees,omitempty"`
	Timezone    string   `json:"timezone,omitempty"`
}

type createEventResp struct {
	Success bool     `json:"success"`
	Data    eventDTO `json:"data"`
	Code    string   `json:"code,omitempty"`
	Error   string   `json:"error,omitempty"`
}

type errorResp struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Error   string `json:"error"`
}
