package bubbletea

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/convo"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const (
	fps           = 60
	frameInterval = time.Second / fps

	gutterWidth    = 2 // selection marker + space
	avatarCells    = 2 // glyph area inside the avatar border
	avatarGap      = 1
	bodyPadding    = 2 // Styles.Body horizontal padding
	minColumnWidth = 8

	// columnStart is the first cell of the author/body column.
	columnStart = gutterWidth + avatarCells + 2 + avatarGap
)

// Card renders one message and owns that message's expand/collapse state.
// No two cards share state.
type Card struct {
	msg    convo.Message
	index  int
	id     int
	state  convo.CardState
	styles Styles
	glyph  string

	// openness is 0 when fully collapsed and 1 when fully expanded. The
	// background color and the visible body height are both derived from it,
	// so one tween drives both.
	openness float64
	from     float64
	frame    int
	frames   int
	gen      int

	wrap wrapCache
}

// NewCard creates a collapsed card for the message at index.
func NewCard(index int, msg convo.Message, styles Styles, cfg Config) *Card {
	cfg = cfg.withDefaults()
	frames := int(cfg.Duration / frameInterval)
	if cfg.Duration > 0 && frames == 0 {
		frames = 1
	}
	glyph := "?"
	if d, err := cfg.Resources.Resolve(convo.ProfilePicture); err != nil {
		cfg.Logger.Printf("card %d: %v", index, err)
	} else if d.Glyph != "" {
		glyph = d.Glyph
	}
	return &Card{
		msg:    msg,
		index:  index,
		styles: styles,
		glyph:  glyph,
		frames: frames,
	}
}

// Message returns the card's message.
func (c *Card) Message() convo.Message { return c.msg }

// State returns the card's target state. While animating, the card is
// still on its way there.
func (c *Card) State() convo.CardState { return c.state }

// Animating reports whether a transition is in progress.
func (c *Card) Animating() bool { return c.openness != c.target() }

// Background returns the current body background as "#rrggbb".
func (c *Card) Background() string {
	return blend(c.styles.Surface, c.styles.Primary, c.openness).Hex()
}

// Foreground returns the current body text color as "#rrggbb".
func (c *Card) Foreground() string {
	return blend(c.styles.OnSurface, c.styles.OnPrimary, c.openness).Hex()
}

func (c *Card) Update(msg tea.Msg) (*Card, tea.Cmd) {
	switch msg := msg.(type) {
	case ToggleMsg:
		c.state = c.state.Toggle()
		c.gen++
		if c.frames == 0 {
			c.openness = c.target()
			return c, nil
		}
		c.from = c.openness
		c.frame = 0
		return c, c.tick()
	case FrameMsg:
		if msg.ID != c.id || msg.Gen != c.gen || !c.Animating() {
			return c, nil
		}
		c.frame++
		if c.frame >= c.frames {
			c.openness = c.target()
			return c, nil
		}
		t := ease(float64(c.frame) / float64(c.frames))
		c.openness = c.from + (c.target()-c.from)*t
		return c, c.tick()
	}
	return c, nil
}

// View renders the card at the given total width. A focused card gets a
// selection marker in the gutter.
func (c *Card) View(width int, focused bool) string {
	col := columnWidth(width)

	author := strings.ReplaceAll(c.msg.Author, "\n", " ")
	author = c.styles.Author.Render(runewidth.Truncate(author, col, "…"))

	lines := c.wrap.get(c.msg.Body, col-bodyPadding)
	body := c.styles.Body.
		Width(col).
		Background(lipgloss.Color(c.Background())).
		Foreground(lipgloss.Color(c.Foreground())).
		Render(strings.Join(lines[:c.visibleLines(lines)], "\n"))

	column := lipgloss.JoinVertical(lipgloss.Left, author, "", body)
	avatar := c.avatar()
	h := max(lipgloss.Height(column), lipgloss.Height(avatar))
	return lipgloss.JoinHorizontal(lipgloss.Top, c.gutter(h, focused), avatar, " ", column)
}

// Height returns the number of lines View produces at width.
func (c *Card) Height(width int) int {
	lines := c.wrap.get(c.msg.Body, columnWidth(width)-bodyPadding)
	return max(lipgloss.Height(c.avatar()), 2+c.visibleLines(lines))
}

// settle puts the card at rest in state s without animating.
func (c *Card) settle(s convo.CardState) {
	c.state = s
	c.openness = c.target()
}

func (c *Card) target() float64 {
	if c.state == convo.Expanded {
		return 1
	}
	return 0
}

func (c *Card) tick() tea.Cmd {
	idx, id, gen := c.index, c.id, c.gen
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return FrameMsg{Index: idx, ID: id, Gen: gen}
	})
}

// visibleLines returns how many wrapped body lines to show. At rest this
// follows convo.Describe; mid-transition it follows the tween.
func (c *Card) visibleLines(lines []string) int {
	n := len(lines)
	if c.Animating() {
		return 1 + int(math.Round(c.openness*float64(n-1)))
	}
	if d := convo.Describe(c.msg, c.state); d.MaxLines > 0 && d.MaxLines < n {
		return d.MaxLines
	}
	return n
}

func (c *Card) avatar() string {
	glyph := c.glyph
	if pad := avatarCells - uniseg.StringWidth(glyph); pad > 0 {
		glyph += strings.Repeat(" ", pad)
	}
	return c.styles.Avatar.Render(glyph)
}

func (c *Card) gutter(height int, focused bool) string {
	mark := strings.Repeat(" ", gutterWidth)
	if focused {
		mark = c.styles.Gutter.Render("▍") + " "
	}
	lines := make([]string, height)
	for i := range lines {
		lines[i] = mark
	}
	return strings.Join(lines, "\n")
}

// columnWidth is the width left for the author and body column.
func columnWidth(width int) int {
	return max(width-columnStart, minColumnWidth)
}

// blend interpolates a→b in CIE-L*u*v*. The endpoints are returned exactly.
func blend(a, b colorful.Color, t float64) colorful.Color {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	default:
		return a.BlendLuv(b, t).Clamped()
	}
}

// ease is a smoothstep curve with ease(0) == 0 and ease(1) == 1.
func ease(t float64) float64 {
	return t * t * (3 - 2*t)
}
