package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"calendar-grid/internal/calendar/repository"
	"calendar-grid/internal/model"
	"calendar-grid/internal/recurrence"
	"calendar-grid/internal/selection"
	"calendar-grid/pkg/datemath"
	"calendar-grid/pkg/daterange"
	"calendar-grid/pkg/log"
	"calendar-grid/pkg/slotgrid"
)

const (
	defaultCacheSize = 256
	defaultCacheTTL  = 2 * time.Minute
	defaultLimit     = 250
)

// Options configures the calendar use case.
type Options struct {
	Location       *time.Location
	Grid           slotgrid.Config
	Providers      []string
	Limit          int
	CacheSize      int
	CacheTTL       time.Duration
	SessionSize    int
	SessionTTL     time.Duration
	MaxOccurrences int
	Now            func() time.Time
}

// implUseCase is the private implementation of calendar.UseCase.
type implUseCase struct {
	l         log.Logger
	source    repository.Source
	computer  *daterange.Computer
	parser    *datemath.Parser
	tracker   *selection.Tracker
	cache     *expirable.LRU[string, []model.Event]
	gens      *generations
	providers []string
	limit     int
	maxOcc    int
	now       func() time.Time
}

// New creates a new calendar UseCase implementation.
func New(l log.Logger, source repository.Source, opt Options) *implUseCase {
	loc := opt.Location
	if loc == nil {
		loc = time.Local
	}
	grid := opt.Grid
	if grid.Validate() != nil {
		grid = slotgrid.Default()
	}
	if opt.CacheSize <= 0 {
		opt.CacheSize = defaultCacheSize
	}
	if opt.CacheTTL <= 0 {
		opt.CacheTTL = defaultCacheTTL
	}
	if opt.Limit <= 0 {
		opt.Limit = defaultLimit
	}
	if opt.MaxOccurrences <= 0 {
		opt.MaxOccurrences = recurrence.DefaultMaxOccurrences
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}

	return &implUseCase{
		l:         l,
		source:    source,
		computer:  daterange.NewWithLocation(loc),
		parser:    datemath.NewParserWithLocation(loc),
		tracker:   selection.NewTracker(selection.New(grid), opt.SessionSize, opt.SessionTTL),
		cache:     expirable.NewLRU[string, []model.Event](opt.CacheSize, nil, opt.CacheTTL),
		gens:      newGenerations(),
		providers: opt.Providers,
		limit:     opt.Limit,
		maxOcc:    opt.MaxOccurrences,
		now:       opt.Now,
	}
}

func (uc *implUseCase) location() *time.Location {
	return uc.computer.Location()
}

func (uc *implUseCase) grid() slotgrid.Config {
	return uc.tracker.Machine().Grid()
}
