package runner

import (
	"bufio"
	"context"
	"io"
	"sync"
	"time"
)

type inputResult struct {
	text string
	err  error
}

// lineReader pumps lines from a blocking reader into a channel so reads can be
// abandoned when a context is cancelled.
type lineReader struct {
	reader    *bufio.Reader
	lines     chan inputResult
	startOnce sync.Once
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{reader: bufio.NewReader(r)}
}

func (l *lineReader) pump() {
	for {
		text, err := l.reader.ReadString('\n')

		// A final line without newline is still a line.
		if text != "" {
			l.lines <- inputResult{text: text}
		}

		if err != nil {
			if err == io.EOF {
				close(l.lines)
				return
			}
			l.lines <- inputResult{err: err}
			// Backoff for non-fatal errors to prevent CPU spikes on persistent failure
			time.Sleep(50 * time.Millisecond)
		}
	}
}

// Next blocks until a line is available or ctx is done.
// The trailing newline is kept; callers trim.
func (l *lineReader) Next(ctx context.Context) (string, error) {
	l.startOnce.Do(func() {
		l.lines = make(chan inputResult)
		go l.pump()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-l.lines:
		if !ok {
			return "", io.EOF
		}
		return res.text, res.err
	}
}
