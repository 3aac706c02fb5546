package transport

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/averycrespi/calc-mcp/pkg/types"
)

// MethodDisplayChanged is the notification method carried by the display feed
const MethodDisplayChanged = "calculator/displayChanged"

const contentLengthHeader = "Content-Length"

type notification struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

// DisplayChange is one entry of the display feed
type DisplayChange struct {
	Sequence int64 `json:"sequence"`
	types.State
}

// FeedWriter publishes state changes as Content-Length framed JSON-RPC
// notifications
type FeedWriter struct {
	writer   io.Writer
	sequence int64
	mu       sync.Mutex
}

// NewFeedWriter creates a feed writing to w
func NewFeedWriter(w io.Writer) *FeedWriter {
	return &FeedWriter{writer: w}
}

// Publish writes one display change to the feed
func (f *FeedWriter) Publish(state types.State) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sequence++
	params, err := json.Marshal(DisplayChange{Sequence: f.sequence, State: state})
	if err != nil {
		return fmt.Errorf("failed to marshal display change: %w", err)
	}

	data, err := json.Marshal(notification{
		JSONRPC: "2.0",
		Method:  MethodDisplayChanged,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal display notification: %w", err)
	}

	if err := f.writeMessage(data); err != nil {
		return err
	}

	slog.Debug("Published display change", "sequence", f.sequence, "display", state.Display)
	return nil
}

func (f *FeedWriter) writeMessage(data []byte) error {
	header := fmt.Sprintf("%s: %d\r\n\r\n", contentLengthHeader, len(data))
	if _, err := io.WriteString(f.writer, header); err != nil {
		return fmt.Errorf("failed to write feed message header: %w", err)
	}

	if _, err := f.writer.Write(data); err != nil {
		return fmt.Errorf("failed to write feed message data: %w", err)
	}

	return nil
}

// FeedReader decodes a display feed
type FeedReader struct {
	reader *bufio.Reader
}

// NewFeedReader creates a reader decoding the feed from r
func NewFeedReader(r io.Reader) *FeedReader {
	return &FeedReader{reader: bufio.NewReader(r)}
}

// Next returns the next display change. It returns io.EOF when the feed ends
// cleanly between messages. Notifications with other methods are skipped.
func (f *FeedReader) Next() (DisplayChange, error) {
	for {
		contentLength, err := f.readHeader()
		if err != nil {
			return DisplayChange{}, err
		}

		body := make([]byte, contentLength)
		if _, err := io.ReadFull(f.reader, body); err != nil {
			return DisplayChange{}, fmt.Errorf("failed to read feed message body: %w", err)
		}

		var msg notification
		if err := json.Unmarshal(body, &msg); err != nil {
			return DisplayChange{}, fmt.Errorf("failed to unmarshal feed message: %w", err)
		}
		if msg.Method != MethodDisplayChanged {
			slog.Debug("Skipping feed message", "method", msg.Method)
			continue
		}

		var change DisplayChange
		if err := json.Unmarshal(msg.Params, &change); err != nil {
			return DisplayChange{}, fmt.Errorf("failed to unmarshal display change: %w", err)
		}
		return change, nil
	}
}

func (f *FeedReader) readHeader() (int, error) {
	contentLength := -1
	sawLine := false

	for {
		line, err := f.reader.ReadString('\n')
		if err != nil {
			if err == io.EOF && !sawLine && line == "" {
				return 0, io.EOF
			}
			return 0, fmt.Errorf("failed to read feed message header: %w", err)
		}
		sawLine = true

		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}

		name, value, ok := strings.Cut(line, ":")
		if !ok {
			return 0, fmt.Errorf("malformed feed header line: %q", line)
		}
		if strings.EqualFold(strings.TrimSpace(name), contentLengthHeader) {
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil || n < 0 {
				return 0, fmt.Errorf("invalid %s: %q", contentLengthHeader, value)
			}
			contentLength = n
		}
	}

	if contentLength < 0 {
		return 0, fmt.Errorf("missing %s header", contentLengthHeader)
	}
	return contentLength, nil
}
