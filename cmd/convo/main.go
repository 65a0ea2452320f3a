// Command convo browses a conversation of expandable message cards.
//
// Usage:
//
//	convo [flags]
//
// Flags:
//
//	-theme string          Palette: light, dark (default light)
//	-conversation string   Path to a conversation file (default: built-in sample)
//	-export string         Write the conversation to a file and exit
//	-duration duration     Expand/collapse animation length (default 300ms, 0 disables)
//	-preview               Print one sample card, collapsed and expanded, and exit
//	-width int             Preview width (default 60)
//	-log string            Write a debug log to this file
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/convo"
	bt "github.com/fwojciec/convo/bubbletea"
	convojson "github.com/fwojciec/convo/json"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "convo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		themeName  = flag.String("theme", "light", "Palette: light, dark")
		convPath   = flag.String("conversation", "", "Path to a conversation file (default: built-in sample)")
		exportPath = flag.String("export", "", "Write the conversation to a file and exit")
		duration   = flag.Duration("duration", bt.DefaultDuration, "Expand/collapse animation length (0 disables)")
		preview    = flag.Bool("preview", false, "Print one sample card, collapsed and expanded, and exit")
		width      = flag.Int("width", 60, "Preview width")
		logPath    = flag.String("log", "", "Write a debug log to this file")
	)
	flag.Parse()

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	theme, err := convo.ThemeByName(*themeName)
	if err != nil {
		return err
	}

	conv, err := loadConversation(*convPath)
	if err != nil {
		return err
	}

	if *exportPath != "" {
		if err := convojson.Save(*exportPath, conv); err != nil {
			return fmt.Errorf("export conversation: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Conversation saved to %s\n", *exportPath)
		return nil
	}

	if *preview {
		return writePreview(os.Stdout, theme, *width)
	}

	cfg := bt.Config{Duration: *duration}
	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "convo")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		cfg.Logger = log.Default()
	}

	if err := bt.Run(ctx, bt.New(conv, theme, cfg)); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}

// loadConversation reads the conversation at path, or returns the built-in
// sample when path is empty.
func loadConversation(path string) (convo.Conversation, error) {
	if path == "" {
		return convo.SampleConversation(), nil
	}
	c, err := convojson.Load(path)
	if err != nil {
		return convo.Conversation{}, fmt.Errorf("load conversation: %w", err)
	}
	return c, nil
}

// writePreview renders the sample card in both states.
func writePreview(w io.Writer, theme convo.Theme, width int) error {
	if err := theme.Validate(); err != nil {
		return err
	}
	card := bt.NewCard(0, convo.SampleMessage(), bt.NewStyles(theme), bt.Config{})
	if _, err := fmt.Fprintf(w, "%s\n\n", card.View(width, false)); err != nil {
		return err
	}
	card.Update(bt.ToggleMsg{})
	_, err := fmt.Fprintln(w, card.View(width, false))
	return err
}
