// internal/ui/nav/loading_test.go
package nav_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront/internal/ui/nav"
)

// recorder captures state transitions for assertions
type recorder struct {
	mu     sync.Mutex
	states []nav.State
	styles []nav.SpinnerStyle
}

func (r *recorder) observe(state nav.State, style nav.SpinnerStyle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, state)
	r.styles = append(r.styles, style)
}

func (r *recorder) snapshot() []nav.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]nav.State(nil), r.states...)
}

func (r *recorder) lastStyle() nav.SpinnerStyle {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.styles) == 0 {
		return nav.SpinnerDefault
	}
	return r.styles[len(r.styles)-1]
}

func fastConfig() nav.Config {
	cfg := nav.DefaultConfig()
	cfg.DataDelay = 30 * time.Millisecond
	cfg.StaticDelay = 15 * time.Millisecond
	cfg.RevealDelay = 5 * time.Millisecond
	cfg.SafetyExpiry = 300 * time.Millisecond
	return cfg
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestDataRouteShowsThenHidesOverlay(t *testing.T) {
	rec := &recorder{}
	controller := nav.NewController(fastConfig(), rec.observe)

	controller.Handle(nav.Event{Path: "/"})
	state, _ := controller.Current()
	assert.Equal(t, nav.StateIdle, state)

	controller.Handle(nav.Event{Path: "/products"})
	state, _ = controller.Current()
	require.Equal(t, nav.StateLoading, state)

	waitFor(t, time.Second, func() bool {
		state, _ := controller.Current()
		return state == nav.StateIdle
	})
	assert.Equal(t, []nav.State{nav.StateLoading, nav.StateIdle}, rec.snapshot())
}

func TestStaticRouteStaysIdle(t *testing.T) {
	rec := &recorder{}
	controller := nav.NewController(fastConfig(), rec.observe)

	controller.Handle(nav.Event{Path: "/"})
	controller.Handle(nav.Event{Path: "/about"})
	state, _ := controller.Current()
	assert.Equal(t, nav.StateIdle, state)

	// Trailing slash matches too
	controller.Handle(nav.Event{Path: "/about/"})
	state, _ = controller.Current()
	assert.Equal(t, nav.StateIdle, state)
	assert.Empty(t, rec.snapshot())
}

func TestRootByInternalNavigationStaysIdle(t *testing.T) {
	controller := nav.NewController(fastConfig(), nil)

	controller.Handle(nav.Event{Path: "/about"})
	controller.Handle(nav.Event{Path: "/"})
	state, _ := controller.Current()
	assert.Equal(t, nav.StateIdle, state)
}

func TestInitialHomepageFromExternalReferrerLoads(t *testing.T) {
	controller := nav.NewController(fastConfig(), nil)

	controller.Handle(nav.Event{Path: "/", Referrer: "https://search.example.com"})
	state, _ := controller.Current()
	assert.Equal(t, nav.StateLoading, state)
}

func TestUnknownRouteDefaultsToLoading(t *testing.T) {
	controller := nav.NewController(fastConfig(), nil)

	controller.Handle(nav.Event{Path: "/"})
	controller.Handle(nav.Event{Path: "/gift-guide"})
	state, _ := controller.Current()
	assert.Equal(t, nav.StateLoading, state)
}

func TestSamePathIsIgnored(t *testing.T) {
	rec := &recorder{}
	controller := nav.NewController(fastConfig(), rec.observe)

	controller.Handle(nav.Event{Path: "/products"})
	controller.Handle(nav.Event{Path: "/products"})

	waitFor(t, time.Second, func() bool {
		state, _ := controller.Current()
		return state == nav.StateIdle
	})
	// One Loading/Idle cycle, not two
	assert.Equal(t, []nav.State{nav.StateLoading, nav.StateIdle}, rec.snapshot())
}

func TestQueryChangeIsANavigation(t *testing.T) {
	controller := nav.NewController(fastConfig(), nil)

	controller.Handle(nav.Event{Path: "/products?page=1"})
	waitFor(t, time.Second, func() bool {
		state, _ := controller.Current()
		return state == nav.StateIdle
	})

	controller.Handle(nav.Event{Path: "/products?page=2"})
	state, _ := controller.Current()
	assert.Equal(t, nav.StateLoading, state)
}

func TestSpinnerStyles(t *testing.T) {
	rec := &recorder{}
	controller := nav.NewController(fastConfig(), rec.observe)

	controller.Handle(nav.Event{Path: "/products/hm-01"})
	assert.Equal(t, nav.SpinnerHeavy, rec.lastStyle())

	controller.Handle(nav.Event{Path: "/checkout"})
	assert.Equal(t, nav.SpinnerMinimal, rec.lastStyle())

	controller.Handle(nav.Event{Path: "/track-order"})
	assert.Equal(t, nav.SpinnerDefault, rec.lastStyle())
}

func TestSafetyTimerForcesIdle(t *testing.T) {
	cfg := fastConfig()
	// Make the normal resolution path unreachable so only the safety
	// timer can end the overlay
	cfg.DataDelay = time.Hour
	cfg.SafetyExpiry = 40 * time.Millisecond
	controller := nav.NewController(cfg, nil)

	controller.Handle(nav.Event{Path: "/products"})
	state, _ := controller.Current()
	require.Equal(t, nav.StateLoading, state)

	waitFor(t, time.Second, func() bool {
		state, _ := controller.Current()
		return state == nav.StateIdle
	})
}

func TestRunConsumesBusEvents(t *testing.T) {
	bus := nav.NewBus()
	controller := nav.NewController(fastConfig(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go controller.Run(ctx, bus)

	bus.Navigated("/products")
	waitFor(t, time.Second, func() bool {
		state, _ := controller.Current()
		return state == nav.StateLoading
	})

	waitFor(t, time.Second, func() bool {
		state, _ := controller.Current()
		return state == nav.StateIdle
	})
}

func TestBusDropsWhenSubscriberLags(t *testing.T) {
	bus := nav.NewBus()
	events := bus.Subscribe()

	for i := 0; i < 40; i++ {
		bus.Navigated("/products")
	}
	bus.Close()

	count := 0
	for range events {
		count++
	}
	assert.LessOrEqual(t, count, 17)
	assert.Positive(t, count)
}
