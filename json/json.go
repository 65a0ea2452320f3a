// Package json reads and writes conversation files.
package json

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/convo"
)

// envelope is the v1 wire format for a persisted conversation.
type envelope struct {
	Version  int          `json:"version"`
	Messages []messageDTO `json:"messages"`
}

// messageDTO is the JSON representation of a Message.
type messageDTO struct {
	Author string `json:"author"`
	Body   string `json:"body"`
}

// MarshalConversation serializes a Conversation to JSON in v1 envelope format.
func MarshalConversation(c convo.Conversation) ([]byte, error) {
	env := envelope{
		Version:  1,
		Messages: make([]messageDTO, c.Len()),
	}
	for i, msg := range c.Messages() {
		env.Messages[i] = messageDTO{Author: msg.Author, Body: msg.Body}
	}
	return json.MarshalIndent(env, "", "  ")
}

// UnmarshalConversation deserializes a Conversation from JSON in v1
// envelope format. Every message is validated.
func UnmarshalConversation(data []byte) (convo.Conversation, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return convo.Conversation{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return convo.Conversation{}, fmt.Errorf("unsupported envelope version: %d", env.Version)
	}
	msgs := make([]convo.Message, len(env.Messages))
	for i, dto := range env.Messages {
		msg := convo.Message{Author: dto.Author, Body: dto.Body}
		if err := convo.ValidateMessage(msg); err != nil {
			return convo.Conversation{}, fmt.Errorf("message %d: %w", i, err)
		}
		msgs[i] = msg
	}
	return convo.NewConversation(msgs...), nil
}

// Save writes a Conversation to a JSON file, creating parent directories as
// needed.
func Save(path string, c convo.Conversation) error {
	data, err := MarshalConversation(c)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Load reads a Conversation from a JSON file.
func Load(path string) (convo.Conversation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return convo.Conversation{}, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalConversation(data)
}
