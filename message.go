// Package convo defines the domain types for a scrollable conversation of
// expandable message cards.
package convo

import "slices"

// Message is a single chat message. Messages are plain values: two messages
// with the same author and body are the same message.
type Message struct {
	Author string
	Body   string
}

// Conversation is an ordered, read-only sequence of messages. Insertion
// order is display order.
type Conversation struct {
	messages []Message
}

// NewConversation creates a Conversation from msgs. The slice is copied, so
// later changes by the caller do not leak into the conversation.
func NewConversation(msgs ...Message) Conversation {
	return Conversation{messages: slices.Clone(msgs)}
}

// Messages returns a copy of the conversation's messages in display order.
func (c Conversation) Messages() []Message {
	return slices.Clone(c.messages)
}

// Len returns the number of messages.
func (c Conversation) Len() int { return len(c.messages) }

// At returns the message at index i. It panics if i is out of range.
func (c Conversation) At(i int) Message { return c.messages[i] }
