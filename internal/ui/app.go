package ui

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/five82/usersearch/internal/directory"
	"github.com/five82/usersearch/internal/search"
)

const (
	inputPlaceholder = "Search users by ID, address, name..."
	inputPrompt      = "⌕ "
)

// LoadFunc fetches the user directory.
type LoadFunc func(ctx context.Context) ([]directory.User, error)

// Options configures the UI.
type Options struct {
	Context     context.Context
	Load        LoadFunc
	Logger      *log.Logger
	ThemeName   string
	FilterDelay time.Duration
	HoverDelay  time.Duration
	// SelectID pre-selects the user with this id once the directory loads.
	SelectID string
	// OnThemeChange is called with the new theme name after ctrl+t.
	OnThemeChange func(name string)
}

type loadStatus int

const (
	statusLoading loadStatus = iota
	statusLoaded
	statusFailed
)

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx    context.Context
	load   LoadFunc
	logger *log.Logger

	onThemeChange func(string)

	ctrl  *search.Controller
	sched *tickScheduler
	input textinput.Model
	keys  keyMap
	help  help.Model

	theme  Theme
	width  int
	height int

	// Load state
	status    loadStatus
	loadErr   error
	userCount int
	selectID  string

	// Results window
	offset      int
	showResults bool

	// Pointer tracking; hovered is a match index or -1.
	hovered     int
	overResults bool

	selected *directory.User
	quitting bool
}

// New creates the search model. It is returned as a pointer because the
// controller's hooks write back into it.
func New(opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	m := &Model{
		ctx:      ctx,
		load:     opts.Load,
		logger:   logger,
		sched:    &tickScheduler{tick: tickCmd},
		keys:     DefaultKeyMap(),
		help:     help.New(),
		theme:    GetTheme(themeName),
		selectID: opts.SelectID,
		hovered:  -1,

		onThemeChange: opts.OnThemeChange,
	}

	m.ctrl = search.NewController(nil, search.Options{
		FilterDelay: opts.FilterDelay,
		HoverDelay:  opts.HoverDelay,
		Scheduler:   m.sched,
		Hooks: search.Hooks{
			OnSelect: m.onSelect,
			OnScroll: m.ensureVisible,
			OnFilter: m.onFilter,
		},
	})

	m.input = textinput.New()
	m.input.Prompt = inputPrompt
	m.input.Placeholder = inputPlaceholder
	m.input.Focus()
	m.applyTheme()
	return m
}

// Selected returns the user chosen during the session, or nil.
func (m *Model) Selected() *directory.User {
	return m.selected
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadCmd())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(m.width-8, 10)
		m.clampOffset()

	case tea.BlurMsg:
		m.ctrl.Blur()

	case timerMsg:
		m.ctrl.Fire(msg.timer)

	case usersLoadedMsg:
		m.handleUsersLoaded(msg)

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.syncInput()
	cmds = append(cmds, m.sched.drain()...)
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderMain()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.ctrl.Close()
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.clampOffset()
		return nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyTheme()
		if m.onThemeChange != nil {
			m.onThemeChange(m.theme.Name)
		}
		return nil
	case key.Matches(msg, m.keys.Up):
		m.ctrl.MoveUp()
		return nil
	case key.Matches(msg, m.keys.Down):
		m.ctrl.MoveDown()
		return nil
	case key.Matches(msg, m.keys.Select):
		m.ctrl.Enter()
		return nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.ctrl.Type(after)
		if after == "" {
			m.showResults = false
		}
	}
	return cmd
}

func (m *Model) handleUsersLoaded(msg usersLoadedMsg) {
	if msg.err != nil {
		m.status = statusFailed
		m.loadErr = msg.err
		return
	}
	m.status = statusLoaded
	m.userCount = len(msg.users)
	m.ctrl.SetUsers(msg.users)

	if m.selectID == "" {
		return
	}
	for _, u := range msg.users {
		if u.ID.String() == m.selectID {
			m.selected = &u
			m.ctrl.SyncSelection(u)
			m.showResults = false
			return
		}
	}
	m.logger.Warn("preselected user not found", "id", m.selectID)
}

func (m *Model) onSelect(u directory.User) {
	m.selected = &u
	m.ctrl.SyncSelection(u)
	m.showResults = true
	m.offset = 0
	m.logger.Info("selected user", "id", u.ID.String(), "name", u.Name)
}

func (m *Model) onFilter(query string, matches []directory.User) {
	m.showResults = true
	m.offset = 0
	m.hovered = -1
	m.logger.Debug("filter pass", "query", query, "matches", len(matches))
}

// syncInput mirrors controller-driven query changes into the text input.
func (m *Model) syncInput() {
	if q := m.ctrl.Query(); q != m.input.Value() {
		m.input.SetValue(q)
		m.input.CursorEnd()
	}
}

func (m *Model) applyTheme() {
	styles := m.theme.Styles()
	m.input.PromptStyle = styles.AccentText
	m.input.TextStyle = styles.Text
	m.input.PlaceholderStyle = styles.FaintText
	m.input.Cursor.Style = styles.AccentText
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.FullKey = styles.AccentText
	m.help.Styles.FullDesc = styles.MutedText
	m.help.Styles.FullSeparator = styles.FaintText
}

// Messages

type usersLoadedMsg struct {
	users []directory.User
	err   error
}

type timerMsg struct {
	timer search.Timer
}

// Commands

func (m *Model) loadCmd() tea.Cmd {
	if m.load == nil {
		return func() tea.Msg { return usersLoadedMsg{} }
	}
	ctx, load := m.ctx, m.load
	return func() tea.Msg {
		users, err := load(ctx)
		return usersLoadedMsg{users: users, err: err}
	}
}

func tickCmd(t search.Timer) tea.Cmd {
	return tea.Tick(t.Delay, func(time.Time) tea.Msg {
		return timerMsg{timer: t}
	})
}

// tickScheduler collects timers requested during an Update so they can be
// returned as Bubble Tea commands.
type tickScheduler struct {
	tick    func(search.Timer) tea.Cmd
	pending []search.Timer
}

func (s *tickScheduler) Schedule(t search.Timer) {
	s.pending = append(s.pending, t)
}

func (s *tickScheduler) drain() []tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(s.pending))
	for _, t := range s.pending {
		cmds = append(cmds, s.tick(t))
	}
	s.pending = s.pending[:0]
	return cmds
}

// Run starts the Bubble Tea program and returns the user selected before
// exit, if any.
func Run(opts Options) (*directory.User, error) {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
		tea.WithContext(m.ctx),
	)
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if fm, ok := final.(*Model); ok {
		return fm.Selected(), nil
	}
	return m.Selected(), nil
}
