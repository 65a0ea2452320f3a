// Package bubbletea provides a Bubble Tea TUI for browsing a conversation
// of expandable message cards.
package bubbletea

import (
	"context"
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/convo"
)

// DefaultDuration is how long a card takes to animate between states.
const DefaultDuration = 300 * time.Millisecond

// Config holds optional settings for the TUI.
type Config struct {
	// Duration of the expand/collapse animation. Zero disables animation.
	Duration time.Duration
	// Resources resolves the profile picture. Nil means convo.DefaultResources.
	Resources convo.Resources
	// Logger receives debug output. Nil discards it.
	Logger *log.Logger
}

func (c Config) withDefaults() Config {
	if c.Resources == nil {
		c.Resources = convo.DefaultResources()
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard, "", 0)
	}
	if c.Duration < 0 {
		c.Duration = 0
	}
	return c
}

// Run creates and runs the Bubble Tea TUI program. It blocks until the program
// exits. Cancelling ctx quits the program.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// ToggleMsg tells a card to flip between collapsed and expanded.
type ToggleMsg struct{}

// FrameMsg advances a card's animation by one frame. Frames that do not
// match the card's current ID and generation are ignored.
type FrameMsg struct {
	Index int
	ID    int
	Gen   int
}
