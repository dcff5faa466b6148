package protocol

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	// DefaultMaxLineLen is the longest line read in one piece, including
	// the terminator. Longer lines are truncated.
	DefaultMaxLineLen = 256

	minLineLen = 16
	terminator = '\n'
)

// LineReader reads newline-terminated protocol lines from a byte stream.
type LineReader struct {
	br *bufio.Reader
}

func NewLineReader(r io.Reader, maxLineLen int) *LineReader {
	if maxLineLen <= 0 {
		maxLineLen = DefaultMaxLineLen
	}

	if maxLineLen < minLineLen {
		maxLineLen = minLineLen
	}

	return &LineReader{
		br: bufio.NewReaderSize(r, maxLineLen),
	}
}

// ReadLine blocks until a full line is available and returns it without the
// terminator. A line that does not fit into the buffer is cut at the buffer
// size, and the rest of it is discarded. A final line not followed by the
// terminator is still returned; io.EOF is reported by the next call.
func (r *LineReader) ReadLine() (string, error) {
	data, err := r.br.ReadSlice(terminator)

	switch {
	case err == nil:
		return trimLine(data), nil
	case errors.Is(err, bufio.ErrBufferFull):
		line := trimLine(data)

		// Skip the tail of the oversized line. A read error here will show
		// up again on the next call, so it is fine to drop it now.
		for errors.Is(err, bufio.ErrBufferFull) {
			_, err = r.br.ReadSlice(terminator)
		}

		return line, nil
	case errors.Is(err, io.EOF) && len(data) > 0:
		return trimLine(data), nil
	default:
		return "", err
	}
}

// Pending reports whether a complete line is already buffered, so that the
// next ReadLine call will not touch the underlying reader.
func (r *LineReader) Pending() bool {
	n := r.br.Buffered()
	if n == 0 {
		return false
	}

	buf, err := r.br.Peek(n)
	if err != nil {
		return false
	}

	return bytes.IndexByte(buf, terminator) >= 0
}

func trimLine(data []byte) string {
	return strings.TrimRight(string(data), "\r\n\x00")
}

// WriteLine writes the line followed by the terminator in a single write
// call and returns the number of bytes written.
func WriteLine(w io.Writer, line string, maxLineLen int) (int, error) {
	if strings.ContainsRune(line, terminator) {
		return 0, fmt.Errorf("%w: embedded line terminator", ErrMalformed)
	}

	if maxLineLen > 0 && len(line)+1 > maxLineLen {
		return 0, fmt.Errorf("%w: %d bytes, limit is %d", ErrLineTooLong, len(line)+1, maxLineLen)
	}

	buf := make([]byte, 0, len(line)+1)
	buf = append(buf, line...)
	buf = append(buf, terminator)

	n, err := w.Write(buf)
	if err != nil {
		return n, err
	}

	if n != len(buf) {
		return n, io.ErrShortWrite
	}

	return n, nil
}
