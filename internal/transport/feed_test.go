package transport

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/averycrespi/calc-mcp/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedWriter_Publish(t *testing.T) {
	var buf bytes.Buffer
	feed := NewFeedWriter(&buf)

	require.NoError(t, feed.Publish(types.State{Display: "7", Mode: types.ModeEntering}))

	output := buf.String()
	header, body, ok := strings.Cut(output, "\r\n\r\n")
	require.True(t, ok, "missing header terminator in %q", output)
	assert.Equal(t, "Content-Length: 110", header)
	assert.Len(t, body, 110)
	assert.JSONEq(t, `{
		"jsonrpc": "2.0",
		"method": "calculator/displayChanged",
		"params": {"sequence": 1, "display": "7", "mode": "entering"}
	}`, body)
}

func TestFeed_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	feed := NewFeedWriter(&buf)

	previous := "12"
	states := []types.State{
		{Display: "12", Mode: types.ModeEntering},
		{Display: "0", Operator: types.OperatorAdd, Previous: &previous, Mode: types.ModeOperatorPending},
		{Display: "Infinity", Mode: types.ModeEntering},
	}
	for _, state := range states {
		require.NoError(t, feed.Publish(state))
	}

	reader := NewFeedReader(&buf)
	for i, expected := range states {
		change, err := reader.Next()
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), change.Sequence)
		assert.Equal(t, expected, change.State)
	}

	_, err := reader.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestFeedReader_SkipsOtherMethods(t *testing.T) {
	other := `{"jsonrpc":"2.0","method":"calculator/ping","params":{}}`
	change := `{"jsonrpc":"2.0","method":"calculator/displayChanged","params":{"sequence":4,"display":"5","mode":"entering"}}`
	input := frame(other) + frame(change)

	reader := NewFeedReader(strings.NewReader(input))
	got, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.Sequence)
	assert.Equal(t, "5", got.Display)
}

func TestFeedReader_Errors(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		errorContains string
	}{
		{
			name:          "missing content length",
			input:         "Content-Type: application/json\r\n\r\n{}",
			errorContains: "missing Content-Length header",
		},
		{
			name:          "invalid content length",
			input:         "Content-Length: many\r\n\r\n{}",
			errorContains: "invalid Content-Length",
		},
		{
			name:          "malformed header",
			input:         "garbage\r\n\r\n",
			errorContains: "malformed feed header line",
		},
		{
			name:          "truncated body",
			input:         "Content-Length: 50\r\n\r\n{}",
			errorContains: "failed to read feed message body",
		},
		{
			name:          "truncated header",
			input:         "Content-Length: 2\r\n",
			errorContains: "failed to read feed message header",
		},
		{
			name:          "invalid json",
			input:         frame("{nope"),
			errorContains: "failed to unmarshal feed message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFeedReader(strings.NewReader(tt.input)).Next()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}

func TestFeedWriter_WriteError(t *testing.T) {
	feed := NewFeedWriter(&failingWriter{})
	err := feed.Publish(types.State{Display: "1"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write feed message header")
}

func frame(body string) string {
	return "Content-Length: " + strconv.Itoa(len(body)) + "\r\n\r\n" + body
}

// failingWriter is a helper type that always returns an error when writing
type failingWriter struct{}

func (f *failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("simulated write error")
}
