package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"calendar-grid/internal/bucket"
	"calendar-grid/internal/calendar"
	repo "calendar-grid/internal/calendar/repository"
	"calendar-grid/internal/model"
	"calendar-grid/internal/recurrence"
	"calendar-grid/pkg/daterange"
)

// ListEvents fetches the events of a view and buckets them under its day columns.
// A fetch whose panel started a newer fetch meanwhile fails with ErrSuperseded.
func (uc *implUseCase) ListEvents(ctx context.Context, sc model.Scope, input calendar.ListEventsInput) (calendar.ListEventsOutput, error) {
	r, view, err := uc.resolve(input.View, input.Date)
	if err != nil {
		return calendar.ListEventsOutput{}, err
	}

	// Rejected requests never fetch, so they must not supersede one that does.
	gen := uc.gens.begin(sc.Key())

	events, cached, err := uc.fetch(ctx, r, input.Providers, input.Limit, input.NoCache)
	if err != nil {
		return calendar.ListEventsOutput{}, err
	}

	if !uc.gens.current(sc.Key(), gen) {
		uc.l.Debugf(ctx, "uc.ListEvents: generation %d of %s superseded", gen, sc.Key())
		return calendar.ListEventsOutput{}, calendar.ErrSuperseded
	}

	expanded := recurrence.Expand(events, r, uc.location(), uc.maxOcc)
	if len(expanded.Invalid) > 0 {
		uc.l.Warnf(ctx, "uc.ListEvents: unparseable recurrence on %v", expanded.Invalid)
	}
	if len(expanded.Truncated) > 0 {
		uc.l.Warnf(ctx, "uc.ListEvents: recurrence truncated on %v", expanded.Truncated)
	}

	days, placed := bucket.Place(expanded.Events, uc.computer.Days(r), uc.location(), bucket.ModeFor(view))

	return calendar.ListEventsOutput{
		View:       view,
		Range:      r,
		Timezone:   uc.location().String(),
		Generation: gen,
		Days:       days,
		Total:      placed,
		Cached:     cached,
		Invalid:    expanded.Invalid,
	}, nil
}

// fetch reads the range from the cache or the source. noCache skips the cache
// lookup and refreshes the entry.
func (uc *implUseCase) fetch(ctx context.Context, r daterange.DateRange, providers []string, limit int, noCache bool) ([]model.Event, bool, error) {
	if !uc.source.Active() {
		return nil, false, calendar.ErrNoIntegration
	}
	if len(providers) == 0 {
		providers = uc.providers
	}
	if limit <= 0 {
		limit = uc.limit
	}

	key := uc.cacheKey(r, providers, limit)
	if !noCache {
		if events, ok := uc.cache.Get(key); ok {
			return events, true, nil
		}
	}

	events, err := uc.source.ListEvents(ctx, repo.ListEventsOptions{
		Providers: providers,
		Limit:     limit,
		Start:     r.Start,
		End:       r.End,
		Timezone:  uc.location().String(),
		NoCache:   noCache,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.fetch %s.ListEvents: %v", uc.source.Name(), err)
		if errors.Is(err, repo.ErrNoIntegration) {
			return nil, false, calendar.ErrNoIntegration
		}
		return nil, false, fmt.Errorf("%w: %v", calendar.ErrFetchFailed, err)
	}

	uc.cache.Add(key, events)
	return events, false, nil
}

func (uc *implUseCase) cacheKey(r daterange.DateRange, providers []string, limit int) string {
	sorted := slices.Clone(providers)
	slices.Sort(sorted)
	return strings.Join([]string{
		uc.source.Name(),
		strings.Join(sorted, ","),
		strconv.FormatInt(r.Start.UnixMilli(), 10),
		strconv.FormatInt(r.End.UnixMilli(), 10),
		uc.location().String(),
		strconv.Itoa(limit),
	}, "|")
}
