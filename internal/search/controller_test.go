package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/usersearch/internal/directory"
)

// recorder is a Scheduler that keeps every requested timer so tests can
// deliver them explicitly.
type recorder struct {
	timers []Timer
}

func (r *recorder) Schedule(t Timer) {
	r.timers = append(r.timers, t)
}

func (r *recorder) last(kind TimerKind) Timer {
	for i := len(r.timers) - 1; i >= 0; i-- {
		if r.timers[i].Kind == kind {
			return r.timers[i]
		}
	}
	return Timer{Kind: kind}
}

type harness struct {
	ctrl     *Controller
	sched    *recorder
	selected []directory.User
	scrolls  []int
	filters  []string
}

func newHarness(t *testing.T, users []directory.User) *harness {
	t.Helper()
	h := &harness{sched: &recorder{}}
	h.ctrl = NewController(users, Options{
		Scheduler: h.sched,
		Hooks: Hooks{
			OnSelect: func(u directory.User) {
				h.selected = append(h.selected, u)
				h.ctrl.SyncSelection(u)
			},
			OnScroll: func(i int) { h.scrolls = append(h.scrolls, i) },
			OnFilter: func(q string, _ []directory.User) { h.filters = append(h.filters, q) },
		},
	})
	return h
}

// search types query and lets the filter debounce elapse.
func (h *harness) search(t *testing.T, query string) {
	t.Helper()
	h.ctrl.Type(query)
	require.True(t, h.ctrl.Fire(h.sched.last(FilterTimer)))
}

func TestController_InitialState(t *testing.T) {
	h := newHarness(t, testUsers)
	st := h.ctrl.State()
	assert.Equal(t, "", st.Query)
	assert.Empty(t, st.Matches)
	assert.Equal(t, -1, st.Highlighted)
	assert.Equal(t, ModalityNone, st.Modality)

	preselected := testUsers[2]
	ctrl := NewController(testUsers, Options{Selected: &preselected})
	assert.Equal(t, "Carol Jacobs", ctrl.Query())
	assert.Empty(t, ctrl.Matches())
}

func TestController_TypeUpdatesQueryImmediatelyAndDebouncesFilter(t *testing.T) {
	h := newHarness(t, testUsers)

	h.ctrl.Type("pen")
	assert.Equal(t, "pen", h.ctrl.Query())
	assert.Empty(t, h.ctrl.Matches(), "filter must wait for the debounce")
	require.Len(t, h.sched.timers, 1)
	assert.Equal(t, FilterTimer, h.sched.timers[0].Kind)
	assert.Equal(t, DefaultFilterDelay, h.sched.timers[0].Delay)
	assert.True(t, h.ctrl.FilterPending())

	require.True(t, h.ctrl.Fire(h.sched.timers[0]))
	assert.Equal(t, []string{"Alice", "Bob"}, names(h.ctrl.Matches()))
	assert.False(t, h.ctrl.FilterPending())
}

func TestController_DebounceCollapsesRapidKeystrokes(t *testing.T) {
	h := newHarness(t, testUsers)

	h.ctrl.Type("p")
	h.ctrl.Type("pe")
	h.ctrl.Type("pen")
	require.Len(t, h.sched.timers, 3)

	fired := 0
	for _, tm := range h.sched.timers {
		if h.ctrl.Fire(tm) {
			fired++
		}
	}
	assert.Equal(t, 1, fired)
	assert.Equal(t, []string{"pen"}, h.filters)
}

func TestController_TimerFiresOnlyOnce(t *testing.T) {
	h := newHarness(t, testUsers)
	h.ctrl.Type("a")
	tm := h.sched.last(FilterTimer)
	assert.True(t, h.ctrl.Fire(tm))
	assert.False(t, h.ctrl.Fire(tm))
	assert.Len(t, h.filters, 1)
}

func TestController_FilterResetsHighlight(t *testing.T) {
	h := newHarness(t, testUsers)
	h.search(t, "pen")
	h.ctrl.MoveDown()
	require.Equal(t, 0, h.ctrl.Highlighted())

	h.search(t, "pencil")
	assert.Equal(t, -1, h.ctrl.Highlighted())
	assert.Equal(t, []string{"Bob"}, names(h.ctrl.Matches()))
}

func TestController_EmptyQueryClearsWithoutFiltering(t *testing.T) {
	h := newHarness(t, testUsers)
	h.search(t, "pen")
	h.ctrl.MoveDown()

	h.ctrl.Type("pe")
	pending := h.sched.last(FilterTimer)
	h.ctrl.Type("")

	assert.Equal(t, "", h.ctrl.Query())
	assert.Empty(t, h.ctrl.Matches())
	assert.Equal(t, -1, h.ctrl.Highlighted())
	assert.False(t, h.ctrl.Fire(pending), "clearing the query cancels the pending filter")
	assert.Equal(t, []string{"pen"}, h.filters)
}

func TestController_KeyboardWraps(t *testing.T) {
	users := []directory.User{{ID: "1", Name: "ann"}, {ID: "2", Name: "anna"}, {ID: "3", Name: "annie"}}
	h := newHarness(t, users)
	h.search(t, "ann")
	require.Len(t, h.ctrl.Matches(), 3)

	h.ctrl.MoveDown()
	h.ctrl.MoveDown()
	h.ctrl.MoveDown()
	assert.Equal(t, 2, h.ctrl.Highlighted())
	h.ctrl.MoveDown()
	assert.Equal(t, 0, h.ctrl.Highlighted())
	h.ctrl.MoveUp()
	assert.Equal(t, 2, h.ctrl.Highlighted())
	h.ctrl.MoveUp()
	assert.Equal(t, 1, h.ctrl.Highlighted())
	assert.Equal(t, ModalityKeyboard, h.ctrl.Modality())
	assert.Equal(t, []int{0, 1, 2, 0, 2, 1}, h.scrolls)
}

func TestController_MoveUpWithoutHighlightGoesToLast(t *testing.T) {
	h := newHarness(t, testUsers)
	h.search(t, "pen")
	h.ctrl.MoveUp()
	assert.Equal(t, 1, h.ctrl.Highlighted())
}

func TestController_NavigationOnEmptyMatchesIsNoop(t *testing.T) {
	h := newHarness(t, testUsers)
	h.search(t, "zebra")

	assert.NotPanics(t, func() {
		h.ctrl.MoveDown()
		h.ctrl.MoveUp()
	})
	assert.Equal(t, -1, h.ctrl.Highlighted())
	assert.Equal(t, ModalityNone, h.ctrl.Modality())
	assert.False(t, h.ctrl.Enter())
	assert.Empty(t, h.scrolls)
}

func TestController_EnterWithoutHighlightIsNoop(t *testing.T) {
	h := newHarness(t, testUsers)
	h.search(t, "pen")
	assert.False(t, h.ctrl.Enter())
	assert.Empty(t, h.selected)
	assert.Len(t, h.ctrl.Matches(), 2)
}

func TestController_EnterSelectsAndSyncsQuery(t *testing.T) {
	h := newHarness(t, testUsers)
	h.search(t, "pen")
	h.ctrl.MoveDown()
	h.ctrl.MoveDown()

	require.True(t, h.ctrl.Enter())
	require.Len(t, h.selected, 1)
	assert.Equal(t, "Bob", h.selected[0].Name)

	st := h.ctrl.State()
	assert.Equal(t, "Bob", st.Query)
	assert.Equal(t, []string{"Bob"}, names(st.Matches))
	assert.Equal(t, -1, st.Highlighted)
	assert.Equal(t, ModalityNone, st.Modality)
}

func TestController_SelectCancelsPendingTimers(t *testing.T) {
	h := newHarness(t, testUsers)
	h.search(t, "pen")
	h.ctrl.PointerEnter(0)
	hover := h.sched.last(HoverTimer)
	h.ctrl.Type("pe")
	filter := h.sched.last(FilterTimer)

	require.True(t, h.ctrl.Click(1))
	assert.False(t, h.ctrl.Fire(filter))
	assert.False(t, h.ctrl.Fire(hover))
	assert.Equal(t, []string{"Bob"}, names(h.ctrl.Matches()))
	assert.Equal(t, "Bob", h.ctrl.Query())
}

func TestController_ClickOutOfRangeIsNoop(t *testing.T) {
	h := newHarness(t, testUsers)
	h.search(t, "pen")
	assert.False(t, h.ctrl.Click(5))
	assert.False(t, h.ctrl.Click(-1))
	assert.Empty(t, h.selected)
}

func TestController_PointerHoverIsDebounced(t *testing.T) {
	h := newHarness(t, testUsers)
	h.search(t, "pen")

	h.ctrl.PointerEnter(1)
	assert.Equal(t, -1, h.ctrl.Highlighted(), "hover waits for its delay")
	tm := h.sched.last(HoverTimer)
	assert.Equal(t, DefaultHoverDelay, tm.Delay)

	require.True(t, h.ctrl.Fire(tm))
	assert.Equal(t, 1, h.ctrl.Highlighted())
	assert.Equal(t, ModalityMouse, h.ctrl.Modality())
	assert.Equal(t, []int{1}, h.scrolls)
}

func TestController_LastHoverWins(t *testing.T) {
	h := newHarness(t, testUsers)
	h.search(t, "pen")

	h.ctrl.PointerEnter(0)
	first := h.sched.last(HoverTimer)
	h.ctrl.PointerLeave()
	h.ctrl.PointerEnter(1)
	second := h.sched.last(HoverTimer)

	assert.False(t, h.ctrl.Fire(first))
	assert.True(t, h.ctrl.Fire(second))
	assert.Equal(t, 1, h.ctrl.Highlighted())
}

func TestController_PointerLeaveClearsHighlightAndPendingHover(t *testing.T) {
	h := newHarness(t, testUsers)
	h.search(t, "pen")
	h.ctrl.PointerEnter(0)
	require.True(t, h.ctrl.Fire(h.sched.last(HoverTimer)))

	h.ctrl.PointerEnter(1)
	pending := h.sched.last(HoverTimer)
	h.ctrl.PointerLeave()

	assert.Equal(t, -1, h.ctrl.Highlighted())
	assert.False(t, h.ctrl.Fire(pending))
}

func TestController_KeyboardTakesPrecedenceOverPointer(t *testing.T) {
	h := newHarness(t, testUsers)
	h.search(t, "pen")
	h.ctrl.MoveDown()
	timers := len(h.sched.timers)

	h.ctrl.PointerEnter(1)
	h.ctrl.PointerLeave()
	assert.Len(t, h.sched.timers, timers, "pointer enter is ignored while keyboard owns the highlight")
	assert.Equal(t, 0, h.ctrl.Highlighted())
	assert.Equal(t, ModalityKeyboard, h.ctrl.Modality())

	h.ctrl.PointerOverResults()
	assert.Equal(t, ModalityNone, h.ctrl.Modality())
	h.ctrl.PointerEnter(1)
	require.True(t, h.ctrl.Fire(h.sched.last(HoverTimer)))
	assert.Equal(t, 1, h.ctrl.Highlighted())
}

func TestController_BlurReleasesKeyboard(t *testing.T) {
	h := newHarness(t, testUsers)
	h.search(t, "pen")
	h.ctrl.MoveDown()
	h.ctrl.Blur()
	assert.Equal(t, ModalityNone, h.ctrl.Modality())
	assert.Equal(t, 0, h.ctrl.Highlighted())
}

func TestController_HoverDroppedWhenRowNoLongerExists(t *testing.T) {
	h := newHarness(t, testUsers)
	h.search(t, "pen")
	h.ctrl.PointerEnter(1)
	hover := h.sched.last(HoverTimer)

	h.search(t, "pencil")
	assert.False(t, h.ctrl.Fire(hover))
	assert.Equal(t, -1, h.ctrl.Highlighted())
}

func TestController_KeyboardMoveCancelsPendingHover(t *testing.T) {
	for _, move := range []struct {
		name string
		fn   func(*Controller)
		want int
	}{
		{"down", (*Controller).MoveDown, 0},
		{"up", (*Controller).MoveUp, 1},
	} {
		t.Run(move.name, func(t *testing.T) {
			h := newHarness(t, testUsers)
			h.search(t, "pen")
			h.ctrl.PointerEnter(1)
			hover := h.sched.last(HoverTimer)

			move.fn(h.ctrl)
			assert.False(t, h.ctrl.HoverPending())
			assert.False(t, h.ctrl.Fire(hover))
			assert.Equal(t, move.want, h.ctrl.Highlighted())
			assert.Equal(t, ModalityKeyboard, h.ctrl.Modality())
		})
	}
}

func TestController_FilterPassCancelsPendingHover(t *testing.T) {
	h := newHarness(t, testUsers)
	h.search(t, "pen")
	h.ctrl.PointerEnter(1)
	hover := h.sched.last(HoverTimer)

	h.search(t, "p")
	require.Greater(t, len(h.ctrl.Matches()), 1, "row 1 still exists after the new pass")
	assert.False(t, h.ctrl.Fire(hover))
	assert.Equal(t, -1, h.ctrl.Highlighted())
	assert.Equal(t, ModalityNone, h.ctrl.Modality())
}

func TestController_SyncSelectionOnlyTouchesQuery(t *testing.T) {
	h := newHarness(t, testUsers)
	h.search(t, "pen")
	h.ctrl.SyncSelection(testUsers[3])
	assert.Equal(t, "Dan", h.ctrl.Query())
	assert.Len(t, h.ctrl.Matches(), 2)

	h.ctrl.Type("Da")
	assert.Equal(t, "Da", h.ctrl.Query())
	assert.Empty(t, h.selected)
}

func TestController_UsesUsersAvailableWhenFilterFires(t *testing.T) {
	h := newHarness(t, nil)
	h.ctrl.Type("pen")
	h.ctrl.SetUsers(testUsers)
	require.True(t, h.ctrl.Fire(h.sched.last(FilterTimer)))
	assert.Equal(t, []string{"Alice", "Bob"}, names(h.ctrl.Matches()))
}

func TestController_CloseCancelsEverything(t *testing.T) {
	h := newHarness(t, testUsers)
	h.search(t, "pen")
	h.ctrl.PointerEnter(0)
	hover := h.sched.last(HoverTimer)
	h.ctrl.Type("pencil")
	filter := h.sched.last(FilterTimer)

	h.ctrl.Close()
	assert.False(t, h.ctrl.Fire(filter))
	assert.False(t, h.ctrl.Fire(hover))
	assert.False(t, h.ctrl.FilterPending())
	assert.False(t, h.ctrl.HoverPending())

	scheduled := len(h.sched.timers)
	h.ctrl.Type("bob")
	h.ctrl.PointerEnter(0)
	assert.Len(t, h.sched.timers, scheduled)
}

func TestController_StateReturnsCopy(t *testing.T) {
	h := newHarness(t, testUsers)
	h.search(t, "pen")
	st := h.ctrl.State()
	st.Matches[0].Name = "mutated"
	assert.Equal(t, "Alice", h.ctrl.Matches()[0].Name)
}

func TestController_CustomDelays(t *testing.T) {
	sched := &recorder{}
	ctrl := NewController(testUsers, Options{Scheduler: sched, FilterDelay: 300, HoverDelay: 10})
	ctrl.Type("a")
	assert.EqualValues(t, 300, sched.last(FilterTimer).Delay)
}

func TestTimerKindAndModalityStrings(t *testing.T) {
	assert.Equal(t, "filter", FilterTimer.String())
	assert.Equal(t, "hover", HoverTimer.String())
	assert.Equal(t, "keyboard", ModalityKeyboard.String())
	assert.Equal(t, "mouse", ModalityMouse.String())
	assert.Equal(t, "none", ModalityNone.String())
}
