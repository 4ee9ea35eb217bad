package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"calendar-grid/internal/calendar/repository"
	"calendar-grid/internal/model"
	"calendar-grid/pkg/log"
)

const (
	eventsPath = "/calendar/events"
	dateLayout = "2006-01-02"
	// wireLayout is ISO-8601 in UTC with milliseconds.
	wireLayout = "2006-01-02T15:04:05.000Z"
)

// ListEvents fetches events in [opt.Start, opt.End] from the gateway.
func (r *implRepository) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.Event, error) {
	if !r.Active() {
		return nil, repository.ErrNoIntegration
	}

	providers := opt.Providers
	if len(providers) == 0 {
		providers = r.providers
	}
	params := map[string]string{
		"providers":  strings.Join(providers, ","),
		"start_date": opt.Start.UTC().Format(wireLayout),
		"end_date":   opt.End.UTC().Format(wireLayout),
	}
	if opt.Limit > 0 {
		params["limit"] = strconv.Itoa(opt.Limit)
	}
	if opt.Timezone != "" {
		params["timezone"] = opt.Timezone
	}
	if opt.NoCache {
		params["no_cache"] = "true"
	}

	var out listEventsResp
	var failure errorResp
	resp, err := r.request(ctx).
		SetQueryParams(params).
		SetResult(&out).
		SetError(&failure).
		Get(eventsPath)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	if err := checkResponse(resp, failure, repository.ErrFailedToList); err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, err
	}
	if !out.Success {
		if out.Code == codeNoIntegration {
			return nil, repository.ErrNoIntegration
		}
		return nil, fmt.Errorf("%w: %s", repository.ErrFailedToList, out.Error)
	}

	events := make([]model.Event, 0, len(out.Data))
	for _, dto := range out.Data {
		ev, err := dto.toModel()
		if err != nil {
			r.l.Warnf(ctx, "%s: skip event %s: %v", r.dsn("ListEvents"), dto.ID, err)
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

// CreateEvent persists a draft. Start and end are sent as UTC instants.
func (r *implRepository) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.Event, error) {
	if !r.Active() {
		return model.Event{}, repository.ErrNoIntegration
	}

	d := opt.Draft
	body := createEventReq{
		Title:       d.Title,
		Description: d.Description,
		StartTime:   d.StartTime.UTC().Format(wireLayout),
		EndTime:     d.EndTime.UTC().Format(wireLayout),
		AllDay:      d.AllDay,
		Location:    d.Location,
		Attendees:   d.Attendees,
		Timezone:    opt.Timezone,
	}

	var out createEventResp
	var failure errorResp
	resp, err := r.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&out).
		SetError(&failure).
		Post(eventsPath)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.Event{}, fmt.Errorf("%w: %v", repository.ErrFailedToCreate, err)
	}
	if err := checkResponse(resp, failure, repository.ErrFailedToCreate); err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.Event{}, err
	}
	if !out.Success {
		if out.Code == codeNoIntegration {
			return model.Event{}, repository.ErrNoIntegration
		}
		return model.Event{}, fmt.Errorf("%w: %s", repository.ErrFailedToCreate, out.Error)
	}

	ev, err := out.Data.toModel()
	if err != nil {
		return model.Event{}, fmt.Errorf("%w: %v", repository.ErrInvalidResponse, err)
	}
	return ev, nil
}

func (r *implRepository) request(ctx context.Context) *resty.Request {
	reqID := log.RequestID(ctx)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	return r.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", reqID)
}

func checkResponse(resp *resty.Response, failure errorResp, base error) error {
	if !resp.IsError() {
		return nil
	}
	if resp.StatusCode() == http.StatusFailedDependency || failure.Code == codeNoIntegration {
		return repository.ErrNoIntegration
	}
	msg := failure.Error
	if msg == "" {
		msg = resp.Status()
	}
	return fmt.Errorf("%w: status %d: %s", base, resp.StatusCode(), msg)
}

func (dto eventDTO) toModel() (model.Event, error) {
	start, err := parseWireTime(dto.StartTime)
	if err != nil {
		return model.Event{}, fmt.Errorf("start_time: %w", err)
	}
	end, err := parseWireTime(dto.EndTime)
	if err != nil {
		return model.Event{}, fmt.Errorf("end_time: %w", err)
	}
	return model.Event{
		ID:          dto.ID,
		Title:       dto.Title,
		Description: dto.Description,
		StartTime:   start,
		EndTime:     end,
		AllDay:      dto.AllDay,
		Location:    dto.Location,
		Attendees:   dto.Attendees,
		Recurrence:  dto.Recurrence,
		Provider:    dto.Provider,
		HTMLLink:    dto.HTMLLink,
	}, nil
}

// parseWireTime accepts RFC3339 instants and bare dates (all-day events).
func parseWireTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(dateLayout, s)
}
