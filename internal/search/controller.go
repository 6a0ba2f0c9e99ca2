package search

import (
	"time"

	"github.com/five82/usersearch/internal/directory"
)

// Modality is the input method that last moved the highlight.
type Modality int

const (
	ModalityNone Modality = iota
	ModalityKeyboard
	ModalityMouse
)

func (m Modality) String() string {
	switch m {
	case ModalityKeyboard:
		return "keyboard"
	case ModalityMouse:
		return "mouse"
	default:
		return "none"
	}
}

// Default debounce delays.
const (
	DefaultFilterDelay = 150 * time.Millisecond
	DefaultHoverDelay  = 50 * time.Millisecond
)

// State is a snapshot of the controller's transient search state.
// Highlighted is -1 when no row is highlighted.
type State struct {
	Query       string
	Matches     []directory.User
	Highlighted int
	Modality    Modality
}

// Hooks are optional callbacks raised by controller transitions.
type Hooks struct {
	// OnSelect reports the chosen user to the selection consumer.
	OnSelect func(u directory.User)
	// OnScroll asks the presentation layer to bring a row into view.
	OnScroll func(index int)
	// OnFilter reports a completed filter pass.
	OnFilter func(query string, matches []directory.User)
}

// Options configure a Controller.
type Options struct {
	FilterDelay time.Duration
	HoverDelay  time.Duration
	Scheduler   Scheduler
	Hooks       Hooks
	// Selected is an externally pre-selected user whose name seeds the query.
	Selected *directory.User
}

// Controller owns the search state and applies interaction transitions.
// It is not safe for concurrent use; callers drive it from one event loop.
type Controller struct {
	users []directory.User
	state State

	filterDelay time.Duration
	hoverDelay  time.Duration
	scheduler   Scheduler
	hooks       Hooks

	filterSlot   slot
	pendingQuery string
	hoverSlot    slot
	pendingHover int

	closed bool
}

// NewController creates a controller over users.
func NewController(users []directory.User, opts Options) *Controller {
	c := &Controller{
		users:       users,
		state:       State{Highlighted: -1},
		filterDelay: opts.FilterDelay,
		hoverDelay:  opts.HoverDelay,
		scheduler:   opts.Scheduler,
		hooks:       opts.Hooks,
	}
	if c.filterDelay <= 0 {
		c.filterDelay = DefaultFilterDelay
	}
	if c.hoverDelay <= 0 {
		c.hoverDelay = DefaultHoverDelay
	}
	if c.scheduler == nil {
		c.scheduler = SchedulerFunc(func(Timer) {})
	}
	if opts.Selected != nil {
		c.state.Query = opts.Selected.Name
	}
	return c
}

// SetUsers replaces the directory searched by later filter passes.
func (c *Controller) SetUsers(users []directory.User) {
	c.users = users
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	s := c.state
	if c.state.Matches != nil {
		s.Matches = append([]directory.User(nil), c.state.Matches...)
	}
	return s
}

// Query returns the live query text.
func (c *Controller) Query() string { return c.state.Query }

// Matches returns the current result set. Callers must not modify it.
func (c *Controller) Matches() []directory.User { return c.state.Matches }

// Highlighted returns the highlighted index, or -1.
func (c *Controller) Highlighted() int { return c.state.Highlighted }

// Modality returns the input method that owns the highlight.
func (c *Controller) Modality() Modality { return c.state.Modality }

// FilterPending reports whether a debounced filter pass is outstanding.
func (c *Controller) FilterPending() bool { return c.filterSlot.pending() }

// HoverPending reports whether a debounced hover is outstanding.
func (c *Controller) HoverPending() bool { return c.hoverSlot.pending() }

// Type records new query text. The query updates immediately; filtering is
// debounced. Clearing the query empties the results without filtering.
func (c *Controller) Type(query string) {
	c.state.Query = query
	if query == "" {
		c.filterSlot.cancel()
		c.pendingQuery = ""
		c.state.Matches = nil
		c.state.Highlighted = -1
		return
	}
	if c.closed {
		return
	}
	c.pendingQuery = query
	gen := c.filterSlot.arm()
	c.scheduler.Schedule(Timer{Kind: FilterTimer, Gen: gen, Delay: c.filterDelay})
}

// Fire delivers an elapsed timer. It reports whether the timer was current
// and took effect; superseded, cancelled, and post-Close timers are dropped.
func (c *Controller) Fire(t Timer) bool {
	if c.closed {
		return false
	}
	switch t.Kind {
	case FilterTimer:
		if !c.filterSlot.fire(t.Gen) {
			return false
		}
		c.runFilter(c.pendingQuery)
		return true
	case HoverTimer:
		if !c.hoverSlot.fire(t.Gen) {
			return false
		}
		if c.pendingHover < 0 || c.pendingHover >= len(c.state.Matches) {
			return false
		}
		c.state.Highlighted = c.pendingHover
		c.state.Modality = ModalityMouse
		c.scrollToHighlight()
		return true
	}
	return false
}

func (c *Controller) runFilter(query string) {
	c.hoverSlot.cancel()
	c.state.Matches = Filter(query, c.users)
	c.state.Highlighted = -1
	if c.hooks.OnFilter != nil {
		c.hooks.OnFilter(query, c.state.Matches)
	}
}

// MoveDown highlights the next match, wrapping to the first.
func (c *Controller) MoveDown() {
	n := len(c.state.Matches)
	if n == 0 {
		return
	}
	c.hoverSlot.cancel()
	c.state.Highlighted = (c.state.Highlighted + 1) % n
	c.state.Modality = ModalityKeyboard
	c.scrollToHighlight()
}

// MoveUp highlights the previous match, wrapping to the last. With nothing
// highlighted it also moves to the last match.
func (c *Controller) MoveUp() {
	n := len(c.state.Matches)
	if n == 0 {
		return
	}
	c.hoverSlot.cancel()
	if c.state.Highlighted <= 0 {
		c.state.Highlighted = n - 1
	} else {
		c.state.Highlighted--
	}
	c.state.Modality = ModalityKeyboard
	c.scrollToHighlight()
}

// Enter selects the highlighted match. Without a highlight it does nothing.
func (c *Controller) Enter() bool {
	i := c.state.Highlighted
	if i < 0 || i >= len(c.state.Matches) {
		return false
	}
	c.Select(c.state.Matches[i])
	return true
}

// Click selects the match at index i.
func (c *Controller) Click(i int) bool {
	if i < 0 || i >= len(c.state.Matches) {
		return false
	}
	c.Select(c.state.Matches[i])
	return true
}

// PointerEnter handles the pointer entering row i. Keyboard-driven highlights
// take priority; otherwise the highlight follows after the hover delay.
func (c *Controller) PointerEnter(i int) {
	if c.state.Modality == ModalityKeyboard || c.closed {
		return
	}
	if i < 0 || i >= len(c.state.Matches) {
		return
	}
	c.pendingHover = i
	gen := c.hoverSlot.arm()
	c.scheduler.Schedule(Timer{Kind: HoverTimer, Gen: gen, Delay: c.hoverDelay})
}

// PointerLeave handles the pointer leaving a row.
func (c *Controller) PointerLeave() {
	if c.state.Modality == ModalityKeyboard {
		return
	}
	c.hoverSlot.cancel()
	c.state.Highlighted = -1
}

// PointerOverResults handles the pointer moving over the results container,
// releasing any keyboard claim on the highlight.
func (c *Controller) PointerOverResults() {
	c.state.Modality = ModalityNone
}

// Blur handles the query input losing focus.
func (c *Controller) Blur() {
	c.state.Modality = ModalityNone
}

// Select reports u to the selection consumer and collapses the results to u.
// The query is left alone; SyncSelection updates it.
func (c *Controller) Select(u directory.User) {
	c.filterSlot.cancel()
	c.hoverSlot.cancel()
	if c.hooks.OnSelect != nil {
		c.hooks.OnSelect(u)
	}
	c.state.Matches = []directory.User{u}
	c.state.Modality = ModalityNone
	c.state.Highlighted = -1
}

// SyncSelection mirrors an externally selected user into the query. Later
// edits to the query do not flow back until the next selection.
func (c *Controller) SyncSelection(u directory.User) {
	c.state.Query = u.Name
}

// Close cancels all outstanding timers. Timers delivered afterwards are
// ignored and no new ones are scheduled.
func (c *Controller) Close() {
	c.filterSlot.cancel()
	c.hoverSlot.cancel()
	c.closed = true
}

func (c *Controller) scrollToHighlight() {
	if c.state.Highlighted < 0 || len(c.state.Matches) == 0 {
		return
	}
	if c.hooks.OnScroll != nil {
		c.hooks.OnScroll(c.state.Highlighted)
	}
}
