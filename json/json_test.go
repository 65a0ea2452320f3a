package json_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/convo"
	convojson "github.com/fwojciec/convo/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalConversation_RoundTrip(t *testing.T) {
	t.Parallel()

	c := convo.NewConversation(
		convo.Message{Author: "Colleague", Body: "first"},
		convo.Message{Author: "Colleague", Body: "multi\nline\n"},
		convo.Message{Author: "Me", Body: ""},
	)

	data, err := convojson.MarshalConversation(c)
	require.NoError(t, err)

	got, err := convojson.UnmarshalConversation(data)
	require.NoError(t, err)
	assert.Equal(t, c.Messages(), got.Messages())
}

func TestMarshalConversation_V1Envelope(t *testing.T) {
	t.Parallel()

	data, err := convojson.MarshalConversation(convo.NewConversation(
		convo.Message{Author: "A", Body: "hello"},
	))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, float64(1), raw["version"])
	msgs, ok := raw["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 1)
	msg, ok := msgs[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "A", msg["author"])
	assert.Equal(t, "hello", msg["body"])
}

func TestMarshalConversation_Empty(t *testing.T) {
	t.Parallel()

	data, err := convojson.MarshalConversation(convo.NewConversation())
	require.NoError(t, err)

	got, err := convojson.UnmarshalConversation(data)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestUnmarshalConversation_UnsupportedVersion(t *testing.T) {
	t.Parallel()
	data := []byte(`{"version": 99, "messages": []}`)
	_, err := convojson.UnmarshalConversation(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported envelope version")
}

func TestUnmarshalConversation_InvalidMessage(t *testing.T) {
	t.Parallel()
	data := []byte(`{"version": 1, "messages": [{"author": "A", "body": "ok"}, {"author": "", "body": "who?"}]}`)
	_, err := convojson.UnmarshalConversation(data)
	require.Error(t, err)
	assert.ErrorIs(t, err, convo.ErrValidation)
	assert.Contains(t, err.Error(), "message 1")
}

func TestUnmarshalConversation_Malformed(t *testing.T) {
	t.Parallel()
	_, err := convojson.UnmarshalConversation([]byte(`{"version":`))
	assert.Error(t, err)
}

func TestSave_And_Load(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "conversation.json")

	c := convo.SampleConversation()
	require.NoError(t, convojson.Save(path, c))

	_, err := os.Stat(path)
	require.NoError(t, err)

	got, err := convojson.Load(path)
	require.NoError(t, err)
	assert.Equal(t, c.Messages(), got.Messages())
}

func TestLoad_NonexistentFile(t *testing.T) {
	t.Parallel()
	_, err := convojson.Load("/nonexistent/path/conversation.json")
	assert.Error(t, err)
}

func TestSave_CreatesParentDirectories(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deep", "conversation.json")

	c := convo.NewConversation(convo.Message{Author: "A", Body: "nested"})
	require.NoError(t, convojson.Save(path, c))

	got, err := convojson.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "nested", got.At(0).Body)
}
