package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/opal-lang/argfeed/core/types"
)

type readResult struct {
	line string
	err  error
}

// lineReader reads one line per call. Each read runs on its own goroutine so
// a cancelled context can abandon a read that is blocked on the terminal; the
// abandoned read stays pending and is consumed by the next call, so reads
// never overlap.
type lineReader struct {
	r       *bufio.Reader
	pending chan readResult
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

// next returns the next line without its line terminator. A final line with
// no newline is still returned; after that, end of input is ErrAborted.
func (lr *lineReader) next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", types.ErrAborted, err)
	}

	if lr.pending == nil {
		ch := make(chan readResult, 1)
		go func() {
			line, err := lr.r.ReadString('\n')
			ch <- readResult{line: line, err: err}
		}()
		lr.pending = ch
	}

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %w", types.ErrAborted, ctx.Err())
	case res := <-lr.pending:
		lr.pending = nil
		line := strings.TrimSuffix(strings.TrimSuffix(res.line, "\n"), "\r")
		switch {
		case res.err == nil:
			return line, nil
		case errors.Is(res.err, io.EOF) && res.line != "":
			return line, nil
		case errors.Is(res.err, io.EOF):
			return "", fmt.Errorf("%w: input closed", types.ErrAborted)
		default:
			return "", fmt.Errorf("read input: %w", res.err)
		}
	}
}
