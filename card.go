package convo

import "strings"

// CardState is the display state of a single message card.
// The zero value is Collapsed.
type CardState uint8

const (
	Collapsed CardState = iota
	Expanded
)

// Toggle returns the opposite state.
func (s CardState) Toggle() CardState {
	if s == Expanded {
		return Collapsed
	}
	return Expanded
}

func (s CardState) String() string {
	if s == Expanded {
		return "expanded"
	}
	return "collapsed"
}

// ColorRole names a slot in a Theme.
type ColorRole string

const (
	RolePrimary          ColorRole = "primary"
	RoleSecondary        ColorRole = "secondary"
	RoleSecondaryVariant ColorRole = "secondary_variant"
	RoleSurface          ColorRole = "surface"
	RoleOnPrimary        ColorRole = "on_primary"
	RoleOnSurface        ColorRole = "on_surface"
)

// CardDescription is what a card shows for a given message and state,
// independent of any terminal width.
type CardDescription struct {
	Author     string
	Body       string
	MaxLines   int // 0 means unlimited
	Background ColorRole
	Foreground ColorRole
}

// Describe maps a message and its card state to a render description.
func Describe(msg Message, s CardState) CardDescription {
	d := CardDescription{
		Author:     msg.Author,
		Body:       msg.Body,
		MaxLines:   1,
		Background: RoleSurface,
		Foreground: RoleOnSurface,
	}
	if s == Expanded {
		d.MaxLines = 0
		d.Background = RolePrimary
		d.Foreground = RoleOnPrimary
	}
	return d
}

// Text returns the body limited to MaxLines logical lines.
func (d CardDescription) Text() string {
	if d.MaxLines <= 0 {
		return d.Body
	}
	lines := strings.SplitN(d.Body, "\n", d.MaxLines+1)
	if len(lines) <= d.MaxLines {
		return d.Body
	}
	return strings.Join(lines[:d.MaxLines], "\n")
}
