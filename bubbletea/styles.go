package bubbletea

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/convo"
	"github.com/lucasb-eyer/go-colorful"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	Author lipgloss.Style
	Avatar lipgloss.Style
	Gutter lipgloss.Style
	Muted  lipgloss.Style
	Body   lipgloss.Style

	// Endpoints of the card tween.
	Surface   colorful.Color
	Primary   colorful.Color
	OnSurface colorful.Color
	OnPrimary colorful.Color
}

// NewStyles creates Styles from a Theme. Unparseable tween endpoints fall
// back to black; call Theme.Validate first to reject them.
func NewStyles(t convo.Theme) Styles {
	return Styles{
		Author: lipgloss.NewStyle().Foreground(hexColor(t.SecondaryVariant)).Bold(true),
		Avatar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(hexColor(t.Secondary)),
		Gutter:    lipgloss.NewStyle().Foreground(hexColor(t.Primary)),
		Muted:     lipgloss.NewStyle().Foreground(hexColor(t.Muted)).Faint(true),
		Body:      lipgloss.NewStyle().Padding(0, 1),
		Surface:   parseHex(t.Surface),
		Primary:   parseHex(t.Primary),
		OnSurface: parseHex(t.OnSurface),
		OnPrimary: parseHex(t.OnPrimary),
	}
}

func hexColor(hex string) lipgloss.TerminalColor {
	if hex == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(hex)
}

func parseHex(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}
	}
	return c
}
