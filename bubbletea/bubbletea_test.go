package bubbletea_test

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/convo"
	bt "github.com/fwojciec/convo/bubbletea"
	"github.com/stretchr/testify/require"
)

// testDuration keeps animations to a handful of frames.
const testDuration = 50 * time.Millisecond

// initModel creates a model without animation and sends a WindowSizeMsg to
// lay out the list.
func initModel(t *testing.T, conv convo.Conversation) bt.Model {
	t.Helper()
	return initModelWithConfig(t, conv, 80, 24, bt.Config{})
}

// initModelWithConfig creates a model with a custom terminal size and config.
func initModelWithConfig(t *testing.T, conv convo.Conversation, width, height int, cfg bt.Config) bt.Model {
	t.Helper()
	m := bt.New(conv, convo.DefaultTheme(), cfg)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// drain runs cmd and feeds its messages back into the model until no
// command is left.
func drain(t *testing.T, m bt.Model, cmd tea.Cmd) bt.Model {
	t.Helper()
	for i := 0; cmd != nil; i++ {
		require.Less(t, i, 1000, "animation did not settle")
		updated, next := m.Update(cmd())
		model, ok := updated.(bt.Model)
		require.True(t, ok)
		m, cmd = model, next
	}
	return m
}

// drainCard runs a card's animation to completion.
func drainCard(t *testing.T, c *bt.Card, cmd tea.Cmd) {
	t.Helper()
	for i := 0; cmd != nil; i++ {
		require.Less(t, i, 1000, "animation did not settle")
		_, cmd = c.Update(cmd())
	}
}

func threeMessages() convo.Conversation {
	return convo.NewConversation(
		convo.Message{Author: "Ann", Body: "alpha"},
		convo.Message{Author: "Ben", Body: "bravo\nsecond line of bravo"},
		convo.Message{Author: "Cat", Body: "charlie"},
	)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
