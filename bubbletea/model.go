package bubbletea

import (
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fwojciec/convo"
)

const (
	cardGap    = 1 // blank lines between cards
	wheelLines = 3
)

var _ tea.Model = Model{}

// Model is the Bubble Tea model for the conversation view.
//
// Cards are materialized lazily: only cards inside the visible window exist.
// A card that scrolls out of the window is disposed. The model keeps every
// card's state, so the card created when it scrolls back in starts at rest
// in the state it was left in.
type Model struct {
	// Viewport and Help are exported for test access.
	Viewport viewport.Model
	Help     help.Model

	conv   convo.Conversation
	styles Styles
	cfg    Config
	keys   keyMap

	states  []convo.CardState // indexed by message
	cards   map[int]*Card     // keyed by message index
	heights *heightCache
	nextID  int

	focus  int // focused card index (-1 = none)
	offset int // first visible card
	skip   int // lines of the offset card scrolled above the window

	width  int
	height int
	ready  bool
}

// New creates a TUI Model for conv.
func New(conv convo.Conversation, theme convo.Theme, cfg Config) Model {
	styles := NewStyles(theme)
	h := help.New()
	h.Styles.ShortKey = styles.Muted
	h.Styles.ShortDesc = styles.Muted
	h.Styles.FullKey = styles.Muted
	h.Styles.FullDesc = styles.Muted

	focus := -1
	if conv.Len() > 0 {
		focus = 0
	}
	return Model{
		Viewport: viewport.New(0, 0),
		Help:     h,
		conv:     conv,
		styles:   styles,
		cfg:      cfg.withDefaults(),
		keys:     defaultKeyMap(),
		states:   make([]convo.CardState, conv.Len()),
		cards:    make(map[int]*Card),
		heights:  &heightCache{},
		focus:    focus,
	}
}

// Len returns the number of cards in the list, one per message.
func (m Model) Len() int { return m.conv.Len() }

// Focus returns the focused card index, or -1 for an empty list.
func (m Model) Focus() int { return m.focus }

// Card returns the materialized card at index i.
func (m Model) Card(i int) (*Card, bool) {
	c, ok := m.cards[i]
	return c, ok
}

// State returns the state of card i, whether or not it is materialized.
func (m Model) State(i int) (convo.CardState, bool) {
	if i < 0 || i >= m.conv.Len() {
		return convo.Collapsed, false
	}
	return m.states[i], true
}

// Materialized returns the indices of cards that currently exist, ascending.
func (m Model) Materialized() []int {
	return slices.Sorted(maps.Keys(m.cards))
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.Help.Width = msg.Width
		m.ready = true
		return m.sync(), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case FrameMsg:
		c, ok := m.cards[msg.Index]
		if !ok {
			return m, nil
		}
		_, cmd := c.Update(msg)
		return m.sync(), cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	if m.listHeight() > 0 {
		b.WriteString(m.Viewport.View())
		b.WriteString("\n")
	}
	b.WriteString(m.helpView())
	return b.String()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return m.sync(), nil
	case key.Matches(msg, m.keys.Up):
		return m.moveFocus(-1), nil
	case key.Matches(msg, m.keys.Down):
		return m.moveFocus(1), nil
	case key.Matches(msg, m.keys.PageUp):
		return m.scrollUp(m.listHeight()).sync(), nil
	case key.Matches(msg, m.keys.PageDown):
		return m.scrollDown(m.listHeight()).sync(), nil
	case key.Matches(msg, m.keys.Home):
		return m.moveFocus(-m.conv.Len()), nil
	case key.Matches(msg, m.keys.End):
		return m.moveFocus(m.conv.Len()), nil
	case key.Matches(msg, m.keys.Toggle):
		return m.toggle(m.focus)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || !m.ready {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return m.scrollUp(wheelLines).sync(), nil
	case tea.MouseButtonWheelDown:
		return m.scrollDown(wheelLines).sync(), nil
	case tea.MouseButtonLeft:
		i, ok := m.cardAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m.focus = i
		return m.toggle(i)
	}
	return m, nil
}

// toggle flips card i, scrolling it into view first if needed.
func (m Model) toggle(i int) (Model, tea.Cmd) {
	if !m.ready || i < 0 || i >= m.conv.Len() {
		return m, nil
	}
	m = m.ensureVisible(i).sync()
	c, ok := m.cards[i]
	if !ok {
		return m, nil
	}
	_, cmd := c.Update(ToggleMsg{})
	m.states[i] = c.State()
	m.cfg.Logger.Printf("card %d: %s", i, c.State())
	return m.sync(), cmd
}

func (m Model) moveFocus(delta int) Model {
	if m.conv.Len() == 0 {
		return m
	}
	m.focus = min(max(m.focus+delta, 0), m.conv.Len()-1)
	if !m.ready {
		return m
	}
	return m.ensureVisible(m.focus).sync()
}

// span is the vertical extent of a card in list coordinates. top may be
// negative for a card partially scrolled above the window; bottom is
// exclusive.
type span struct {
	index  int
	top    int
	bottom int
}

// layout walks cards from the scroll position until the list area is full.
func (m Model) layout() []span {
	lh := m.listHeight()
	var spans []span
	y := -m.skip
	for i := m.offset; i < m.conv.Len() && y < lh; i++ {
		h := m.cardHeight(i)
		if y+h > 0 {
			spans = append(spans, span{index: i, top: y, bottom: y + h})
		}
		y += h + cardGap
	}
	return spans
}

// cardAt returns the card whose author/body column is at (x, y). The gutter
// and profile picture are not click targets.
func (m Model) cardAt(x, y int) (int, bool) {
	if x < columnStart {
		return 0, false
	}
	for _, s := range m.layout() {
		if y >= max(s.top, 0) && y < s.bottom {
			return s.index, true
		}
	}
	return 0, false
}

// newCard creates a card for message i at rest in its stored state.
func (m Model) newCard(i int) *Card {
	c := NewCard(i, m.conv.At(i), m.styles, m.cfg)
	c.settle(m.states[i])
	return c
}

// cardHeight measures materialized cards directly. Cards outside the window
// are at rest, so their heights are cached.
func (m Model) cardHeight(i int) int {
	if c, ok := m.cards[i]; ok {
		return c.Height(m.width)
	}
	k := heightKey{index: i, state: m.states[i]}
	return m.heights.get(k, m.width, func() int {
		return m.newCard(i).Height(m.width)
	})
}

// blockHeight is a card's height plus the gap below it. The last card has
// no gap.
func (m Model) blockHeight(i int) int {
	if i == m.conv.Len()-1 {
		return m.cardHeight(i)
	}
	return m.cardHeight(i) + cardGap
}

// remaining counts lines from the top of the window to the end of the list.
func (m Model) remaining() int {
	n := -m.skip
	for i := m.offset; i < m.conv.Len(); i++ {
		n += m.blockHeight(i)
	}
	return n
}

func (m Model) scrollDown(n int) Model {
	lh := m.listHeight()
	rem := m.remaining()
	for ; n > 0 && rem > lh; n-- {
		m.skip++
		rem--
		if m.skip >= m.blockHeight(m.offset) {
			m.offset++
			m.skip = 0
		}
	}
	return m
}

func (m Model) scrollUp(n int) Model {
	for ; n > 0; n-- {
		switch {
		case m.skip > 0:
			m.skip--
		case m.offset > 0:
			m.offset--
			m.skip = m.blockHeight(m.offset) - 1
		default:
			return m
		}
	}
	return m
}

// ensureVisible scrolls the minimum amount needed to show card i. A card
// taller than the window is aligned to the top.
func (m Model) ensureVisible(i int) Model {
	if i < m.offset || (i == m.offset && m.skip > 0) {
		m.offset = i
		m.skip = 0
		return m
	}
	top := -m.skip
	for j := m.offset; j < i; j++ {
		top += m.blockHeight(j)
	}
	bottom := top + m.cardHeight(i)
	if over := bottom - m.listHeight(); over > 0 {
		m = m.scrollDown(min(over, top))
	}
	return m
}

// clampScroll keeps the scroll position valid after heights change and
// pulls content down when the end of the list no longer fills the window.
func (m Model) clampScroll() Model {
	if m.conv.Len() == 0 {
		m.offset, m.skip = 0, 0
		return m
	}
	if m.offset >= m.conv.Len() {
		m.offset = m.conv.Len() - 1
		m.skip = 0
	}
	if h := m.blockHeight(m.offset); m.skip >= h {
		m.skip = h - 1
	}
	if short := m.listHeight() - m.remaining(); short > 0 {
		m = m.scrollUp(short)
	}
	return m
}

// sync materializes cards entering the window and disposes cards leaving it.
func (m Model) sync() Model {
	if !m.ready {
		return m
	}
	m = m.clampScroll()
	visible := make(map[int]bool)
	for _, s := range m.layout() {
		visible[s.index] = true
		if _, ok := m.cards[s.index]; ok {
			continue
		}
		m.nextID++
		c := m.newCard(s.index)
		c.id = m.nextID
		m.cards[s.index] = c
	}
	for i := range m.cards {
		if !visible[i] {
			delete(m.cards, i)
			m.cfg.Logger.Printf("card %d: disposed", i)
		}
	}
	return m.render()
}

// render feeds the viewport with the materialized cards. Content starts at
// the top of the offset card, so the viewport offset is the skip.
func (m Model) render() Model {
	m.Viewport.Width = m.width
	m.Viewport.Height = m.listHeight()
	if m.conv.Len() == 0 {
		m.Viewport.SetContent(m.styles.Muted.Render("No messages"))
		m.Viewport.SetYOffset(0)
		return m
	}
	var lines []string
	for _, s := range m.layout() {
		top := s.top + m.skip
		for len(lines) < top {
			lines = append(lines, "")
		}
		view := m.cards[s.index].View(m.width, s.index == m.focus)
		lines = append(lines, strings.Split(view, "\n")...)
	}
	for len(lines) < m.skip+m.Viewport.Height {
		lines = append(lines, "")
	}
	m.Viewport.SetContent(strings.Join(lines, "\n"))
	m.Viewport.SetYOffset(m.skip)
	return m
}

func (m Model) listHeight() int {
	return max(m.height-lipgloss.Height(m.helpView()), 0)
}

// helpView renders the help line clipped to the terminal width.
func (m Model) helpView() string {
	v := m.Help.View(m.keys)
	if m.width <= 0 {
		return v
	}
	lines := strings.Split(v, "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, m.width, "…")
	}
	return strings.Join(lines, "\n")
}

type heightKey struct {
	index int
	state convo.CardState
}

// heightCache remembers the at-rest heights of cards outside the window.
// Entries are dropped when the width changes.
type heightCache struct {
	width   int
	heights map[heightKey]int
}

func (c *heightCache) get(k heightKey, width int, measure func() int) int {
	if c.heights == nil || c.width != width {
		c.heights = make(map[heightKey]int)
		c.width = width
	}
	if h, ok := c.heights[k]; ok {
		return h
	}
	h := measure()
	c.heights[k] = h
	return h
}
