package convo

import (
	"fmt"
	"strings"
)

// ValidateMessage checks that a message has an author. Empty bodies are
// allowed.
func ValidateMessage(msg Message) error {
	if strings.TrimSpace(msg.Author) == "" {
		return fmt.Errorf("message author must not be blank: %w", ErrValidation)
	}
	return nil
}

// Validate checks every message in the conversation.
func (c Conversation) Validate() error {
	for i, msg := range c.messages {
		if err := ValidateMessage(msg); err != nil {
			return fmt.Errorf("message %d: %w", i, err)
		}
	}
	return nil
}
