package convo_test

import (
	"testing"

	"github.com/fwojciec/convo"
	"github.com/stretchr/testify/assert"
)

func TestValidateMessage(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, convo.ValidateMessage(convo.Message{Author: "A", Body: "hi"}))
	})

	t.Run("empty body is allowed", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, convo.ValidateMessage(convo.Message{Author: "A"}))
	})

	t.Run("blank author", func(t *testing.T) {
		t.Parallel()
		err := convo.ValidateMessage(convo.Message{Author: "  ", Body: "hi"})
		assert.ErrorIs(t, err, convo.ErrValidation)
	})
}

func TestConversation_Validate(t *testing.T) {
	t.Parallel()

	t.Run("sample conversation is valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, convo.SampleConversation().Validate())
	})

	t.Run("reports index of invalid message", func(t *testing.T) {
		t.Parallel()
		c := convo.NewConversation(
			convo.Message{Author: "A", Body: "ok"},
			convo.Message{Body: "no author"},
		)
		err := c.Validate()
		assert.ErrorIs(t, err, convo.ErrValidation)
		assert.Contains(t, err.Error(), "message 1")
	})
}
