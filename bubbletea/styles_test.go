package bubbletea_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/convo"
	bt "github.com/fwojciec/convo/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestNewStyles(t *testing.T) {
	t.Parallel()

	theme := convo.DefaultTheme()
	styles := bt.NewStyles(theme)

	assert.Equal(t, lipgloss.Color("#018786"), styles.Author.GetForeground())
	assert.True(t, styles.Author.GetBold())

	assert.Equal(t, lipgloss.Color("#03DAC6"), styles.Avatar.GetBorderTopForeground())
	assert.Equal(t, lipgloss.Color("#6200EE"), styles.Gutter.GetForeground())

	assert.Equal(t, lipgloss.Color("#757575"), styles.Muted.GetForeground())
	assert.True(t, styles.Muted.GetFaint())

	assert.Equal(t, 1, styles.Body.GetPaddingLeft())
	assert.Equal(t, 1, styles.Body.GetPaddingRight())

	assert.Equal(t, "#ffffff", styles.Surface.Hex())
	assert.Equal(t, "#6200ee", styles.Primary.Hex())
	assert.Equal(t, "#000000", styles.OnSurface.Hex())
	assert.Equal(t, "#ffffff", styles.OnPrimary.Hex())
}

func TestNewStylesEmptyColorYieldsNoColor(t *testing.T) {
	t.Parallel()

	theme := convo.DefaultTheme()
	theme.SecondaryVariant = ""
	styles := bt.NewStyles(theme)

	assert.Equal(t, lipgloss.NoColor{}, styles.Author.GetForeground())
}

func TestNewStylesDarkTheme(t *testing.T) {
	t.Parallel()

	styles := bt.NewStyles(convo.DarkTheme())

	assert.Equal(t, "#121212", styles.Surface.Hex())
	assert.Equal(t, "#bb86fc", styles.Primary.Hex())
}
