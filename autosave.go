package pagebuilder

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"

	"github.com/eringen/pagebuilder/notify"
)

// SavedNotice is pushed to a workspace each time the autosaver writes it.
const SavedNotice = "Changes saved locally"

// AutoSaver periodically writes every live workspace to the store. It is
// driven by the clock alone; edits do not trigger a save.
type AutoSaver struct {
	scheduler  gocron.Scheduler
	workspaces *Workspaces
	notices    *notify.Center
	metrics    *Metrics
	logger     echo.Logger

	mu      sync.Mutex
	started bool
	stopped bool
}

// NewAutoSaver schedules the save pass every interval.
func NewAutoSaver(ws *Workspaces, notices *notify.Center, m *Metrics, logger echo.Logger, interval time.Duration, clock clockwork.Clock) (*AutoSaver, error) {
	s, err := gocron.NewScheduler(gocron.WithClock(clock))
	if err != nil {
		return nil, fmt.Errorf("pagebuilder: create scheduler: %w", err)
	}
	a := &AutoSaver{
		scheduler:  s,
		workspaces: ws,
		notices:    notices,
		metrics:    m,
		logger:     logger,
	}
	if _, err := s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(a.run),
		gocron.WithName("autosave"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	); err != nil {
		_ = s.Shutdown()
		return nil, fmt.Errorf("pagebuilder: schedule autosave: %w", err)
	}
	return a, nil
}

// Start begins the schedule. It does nothing once Stop has been called.
func (a *AutoSaver) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.started || a.stopped {
		return
	}
	a.scheduler.Start()
	a.started = true
}

// Stop halts the schedule and runs one last save pass. It may be called
// before Start.
func (a *AutoSaver) Stop() error {
	a.mu.Lock()
	var err error
	if a.started && !a.stopped {
		err = a.scheduler.Shutdown()
	}
	a.stopped = true
	a.mu.Unlock()

	a.saveAll()
	return err
}

func (a *AutoSaver) run() {
	a.saveAll()
	if evicted := a.workspaces.EvictIdle(); len(evicted) > 0 {
		for _, id := range evicted {
			a.notices.Forget(id)
		}
		a.logger.Infof("evicted %d idle workspaces", len(evicted))
	}
}

func (a *AutoSaver) saveAll() {
	saved, err := a.workspaces.SaveAll()
	for _, ws := range saved {
		a.metrics.save(nil)
		a.notices.Push(ws.ID, SavedNotice)
	}
	if err != nil {
		a.metrics.save(err)
		a.logger.Errorf("autosave: %v", err)
	}
}
