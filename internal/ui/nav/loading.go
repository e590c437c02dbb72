// internal/ui/nav/loading.go
package nav

import (
	"context"
	"strings"
	"sync"
	"time"
)

// State is the loading overlay state
type State int

const (
	StateIdle State = iota
	StateLoading
)

func (s State) String() string {
	if s == StateLoading {
		return "loading"
	}
	return "idle"
}

// SpinnerStyle selects which spinner the overlay renders while loading
type SpinnerStyle int

const (
	SpinnerDefault SpinnerStyle = iota
	SpinnerHeavy                // product detail pages
	SpinnerMinimal              // cart and checkout
)

// Config holds the controller's route allowlists and timing. Routes
// matching a DataPrefix are expected to fetch data and get the longer
// overlay delay; StaticRoutes match exactly (trailing slash ignored)
// and never show the overlay.
type Config struct {
	DataPrefixes []string
	StaticRoutes []string

	DataDelay    time.Duration // overlay time for data-fetching routes
	StaticDelay  time.Duration // overlay time for everything else
	RevealDelay  time.Duration // pause before content fades back in
	SafetyExpiry time.Duration // hard cap; overlay never outlives this
}

// DefaultConfig returns the storefront's route classification and the
// production timings
func DefaultConfig() Config {
	return Config{
		DataPrefixes: []string{"/products", "/category", "/cart", "/checkout", "/track-order"},
		StaticRoutes: []string{"/about", "/contact", "/faq", "/terms", "/privacy"},
		DataDelay:    400 * time.Millisecond,
		StaticDelay:  200 * time.Millisecond,
		RevealDelay:  50 * time.Millisecond,
		SafetyExpiry: 3000 * time.Millisecond,
	}
}

// Controller decides, per committed navigation, whether to show the
// loading overlay and for how long. It subscribes to the navigation
// bus and runs a small state machine: Idle -> (classify) -> Loading ->
// (timer) -> Idle, with an unconditional safety timer guaranteeing the
// overlay never sticks.
type Controller struct {
	cfg      Config
	onChange func(State, SpinnerStyle)

	mu          sync.Mutex
	state       State
	style       SpinnerStyle
	lastPath    string
	seenAny     bool
	generation  int
	doneTimer   *time.Timer
	revealTimer *time.Timer
	safetyTimer *time.Timer
}

// NewController creates a loading controller. onChange, if non-nil, is
// called on every state transition.
func NewController(cfg Config, onChange func(State, SpinnerStyle)) *Controller {
	return &Controller{
		cfg:      cfg,
		onChange: onChange,
		state:    StateIdle,
	}
}

// Run consumes navigation events until the context is canceled or the
// bus closes
func (c *Controller) Run(ctx context.Context, bus *Bus) {
	events := bus.Subscribe()
	for {
		select {
		case <-ctx.Done():
			c.stopTimersAndIdle()
			return
		case event, ok := <-events:
			if !ok {
				c.stopTimersAndIdle()
				return
			}
			c.Handle(event)
		}
	}
}

// Current returns the controller state and the spinner style to render
func (c *Controller) Current() (State, SpinnerStyle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.style
}

// Handle processes one committed navigation
func (c *Controller) Handle(event Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// The bus fires for every committed navigation; same path+query
	// again means nothing changed
	if c.seenAny && event.Path == c.lastPath {
		return
	}
	firstLoad := !c.seenAny
	c.seenAny = true
	c.lastPath = event.Path

	path := normalizePath(event.Path)

	switch {
	case c.isDataRoute(path):
		c.enterLoadingLocked(spinnerFor(path), c.cfg.DataDelay)
	case firstLoad && path == "/" && event.Referrer != "":
		// Initial homepage load arriving from elsewhere fetches the
		// hero and featured grid
		c.enterLoadingLocked(SpinnerDefault, c.cfg.DataDelay)
	case c.isStaticRoute(path):
		// Static content renders immediately
	case path == "/":
		// Root reached by internal navigation is already warm
	default:
		c.enterLoadingLocked(spinnerFor(path), c.cfg.StaticDelay)
	}
}

func (c *Controller) isDataRoute(path string) bool {
	for _, prefix := range c.cfg.DataPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func (c *Controller) isStaticRoute(path string) bool {
	for _, route := range c.cfg.StaticRoutes {
		if path == route || path == route+"/" {
			return true
		}
	}
	return false
}

// spinnerFor picks the overlay style: heavy for product detail,
// minimal for cart/checkout, default otherwise
func spinnerFor(path string) SpinnerStyle {
	switch {
	case strings.HasPrefix(path, "/products/"):
		return SpinnerHeavy
	case strings.HasPrefix(path, "/cart") || strings.HasPrefix(path, "/checkout"):
		return SpinnerMinimal
	default:
		return SpinnerDefault
	}
}

// normalizePath strips the query string for classification; the query
// still participates in change detection upstream
func normalizePath(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	return path
}

func (c *Controller) enterLoadingLocked(style SpinnerStyle, delay time.Duration) {
	c.stopTimersLocked()
	c.generation++
	generation := c.generation

	alreadyLoading := c.state == StateLoading
	styleChanged := c.style != style
	c.state = StateLoading
	c.style = style
	if !alreadyLoading || styleChanged {
		c.notifyLocked()
	}

	c.doneTimer = time.AfterFunc(delay, func() {
		c.beginReveal(generation)
	})
	// Unconditional backstop: whatever else happens, the overlay
	// comes down within SafetyExpiry
	c.safetyTimer = time.AfterFunc(c.cfg.SafetyExpiry, func() {
		c.forceIdle(generation)
	})
}

func (c *Controller) beginReveal(generation int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation != generation || c.state != StateLoading {
		return
	}
	c.revealTimer = time.AfterFunc(c.cfg.RevealDelay, func() {
		c.forceIdle(generation)
	})
}

func (c *Controller) forceIdle(generation int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation != generation || c.state != StateLoading {
		return
	}
	c.stopTimersLocked()
	c.state = StateIdle
	c.notifyLocked()
}

func (c *Controller) stopTimersAndIdle() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopTimersLocked()
	if c.state != StateIdle {
		c.state = StateIdle
		c.notifyLocked()
	}
}

func (c *Controller) stopTimersLocked() {
	for _, timer := range []*time.Timer{c.doneTimer, c.revealTimer, c.safetyTimer} {
		if timer != nil {
			timer.Stop()
		}
	}
	c.doneTimer, c.revealTimer, c.safetyTimer = nil, nil, nil
}

func (c *Controller) notifyLocked() {
	if c.onChange != nil {
		c.onChange(c.state, c.style)
	}
}
