// Package desktop ties the window registry, icon surfaces, dock, menu bar
// and launcher into one desktop.
//
// Every command runs to completion under a single lock, so concurrent
// transports observe the same sequence a single event loop would. After
// each applied command the version advances and subscribers are told.
package desktop

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/catalog"
	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/dock"
	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/icons"
	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/launchpad"
	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/menu"
	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/window"
	"github.com/GriffinCanCode/WebDesk/backend/internal/shared/types"
)

// ErrNotFound is returned when a launcher entry does not exist
var ErrNotFound = errors.New("desktop: not found")

// Recorder receives command outcomes and registry state
type Recorder interface {
	RecordCommand(command string, applied bool)
	RecordState(stats window.Stats)
}

type nopRecorder struct{}

func (nopRecorder) RecordCommand(string, bool) {}
func (nopRecorder) RecordState(window.Stats) {}

// Options configures a desktop
type Options struct {
	Bounds        types.Rect
	Window        window.Options
	ClockInterval time.Duration
	Now           func() time.Time
	Logger        *zap.Logger
	Recorder      Recorder
}

// DefaultOptions returns a 1280x720 surface below a 28px menu bar
func DefaultOptions() Options {
	return Options{
		Bounds:        types.Rect{X: 0, Y: 28, Width: 1280, Height: 692},
		Window:        window.DefaultOptions(),
		ClockInterval: time.Minute,
		Now:           time.Now,
	}
}

// Desktop is one user's desktop
type Desktop struct {
	mu      sync.Mutex
	log     *zap.Logger
	metrics Recorder
	cat     *catalog.Catalog

	bounds  types.Rect
	windows *window.Registry[types.Content]
	icons   *icons.Store
	folders map[string]*icons.Store // keyed by window id
	dock    *dock.Bridge
	bar     *menu.Bar
	pad     *launchpad.Launchpad

	now      func() time.Time
	clock    time.Time
	interval time.Duration
	version  uint64

	// set by menu handlers that changed state
	dirty bool

	subs    map[int]chan uint64
	nextSub int

	stop      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
	closed    bool
}

// New creates a desktop from a catalog
func New(cat *catalog.Catalog, opts Options) (*Desktop, error) {
	if cat == nil {
		return nil, fmt.Errorf("desktop: nil catalog")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Recorder == nil {
		opts.Recorder = nopRecorder{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ClockInterval <= 0 {
		opts.ClockInterval = time.Minute
	}

	d := &Desktop{
		log:      opts.Logger.Named("desktop"),
		metrics:  opts.Recorder,
		cat:      cat,
		bounds:   opts.Bounds,
		windows:  window.NewRegistry[types.Content](opts.Window),
		icons:    icons.NewStore(opts.Bounds, icons.DefaultFootprint, cat.Icons...),
		folders:  make(map[string]*icons.Store),
		pad:      launchpad.New(cat.Launchpad...),
		now:      opts.Now,
		clock:    opts.Now(),
		interval: opts.ClockInterval,
		subs:     make(map[int]chan uint64),
		stop:     make(chan struct{}),
	}

	d.dock = dock.NewBridge(launcher{d}, cat.Dock...)
	d.bar = menu.NewBar(d.windows.FocusedID, cat.Menus...)
	d.registerCommands()
	if err := d.bar.Validate(); err != nil {
		return nil, fmt.Errorf("desktop menus: %w", err)
	}

	return d, nil
}

// Start runs the menu-bar clock until ctx ends or Shutdown is called
func (d *Desktop) Start(ctx context.Context) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ticker := time.NewTicker(d.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-d.stop:
				return
			case <-ticker.C:
				d.Tick()
			}
		}
	}()
}

// Tick refreshes the clock and publishes
func (d *Desktop) Tick() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clock = d.now()
	d.commit()
}

// Shutdown stops the clock and closes every subscription
func (d *Desktop) Shutdown() {
	d.closeOnce.Do(func() {
		close(d.stop)
		d.wg.Wait()

		d.mu.Lock()
		defer d.mu.Unlock()
		d.closed = true
		for id, ch := range d.subs {
			close(ch)
			delete(d.subs, id)
		}
	})
}

// Subscribe returns a channel that receives the latest version after
// each change. Slow readers see only the newest version. The returned
// func cancels the subscription.
func (d *Desktop) Subscribe() (<-chan uint64, func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	ch := make(chan uint64, 1)
	if d.closed {
		close(ch)
		return ch, func() {}
	}

	id := d.nextSub
	d.nextSub++
	d.subs[id] = ch

	return ch, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if c, ok := d.subs[id]; ok {
			close(c)
			delete(d.subs, id)
		}
	}
}

// Version returns the current change counter
func (d *Desktop) Version() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.version
}

// commit publishes a change. Caller holds mu.
func (d *Desktop) commit() {
	d.version++
	for _, ch := range d.subs {
		select {
		case ch <- d.version:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- d.version
		}
	}
	d.metrics.RecordState(d.windows.Stats())
}

// record logs and counts a command outcome, committing when applied.
// Caller holds mu.
func (d *Desktop) record(command, target string, applied bool) bool {
	d.metrics.RecordCommand(command, applied)
	if !applied {
		d.log.Debug("command had no effect", zap.String("command", command), zap.String("target", target))
		return false
	}
	d.commit()
	return true
}

// launcher lets the dock bridge open windows while the desktop lock is held
type launcher struct{ d *Desktop }

func (l launcher) Launch(id, title, icon string, content types.Content, size *types.Size) {
	l.d.launch(window.LaunchRequest[types.Content]{ID: id, Title: title, Icon: icon, Content: content, Size: size})
}

func (l launcher) IsActive(id string) bool {
	return l.d.windows.IsActive(id)
}
