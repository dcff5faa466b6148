package protocol

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const (
	// DefaultMaxTokens is the number of tokens kept from one line.
	// Anything past it is dropped.
	DefaultMaxTokens = 100

	// MaxGroupNameLen is the longest group name accepted by the encoder.
	MaxGroupNameLen = 64
)

// Tokenize splits the line into whitespace-separated tokens, keeping at most
// max of them. A non-positive max means no limit.
func Tokenize(line string, max int) []string {
	tokens := strings.Fields(line)

	if max > 0 && len(tokens) > max {
		tokens = tokens[:max]
	}

	return tokens
}

// ValidateName reports whether the name can be sent as a single protocol token.
func ValidateName(name string, maxLen int) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}

	if maxLen > 0 && len(name) > maxLen {
		return fmt.Errorf("%w: %q is longer than %d bytes", ErrInvalidName, name, maxLen)
	}

	for _, r := range name {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return fmt.Errorf("%w: %q contains whitespace or control characters", ErrInvalidName, name)
		}
	}

	return nil
}

// atoi mimics the C library function: an optional sign followed by the leading
// decimal digits of the token. Anything unparsable gives zero.
func atoi(s string) int {
	end := 0

	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}

	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}

	return n
}

type args struct {
	tokens []string
	strict bool
	err    error
}

func (a *args) str(i int) string {
	if i < len(a.tokens) {
		return a.tokens[i]
	}

	if a.strict && a.err == nil {
		a.err = fmt.Errorf("%w: missing argument %d", ErrMalformed, i)
	}

	return ""
}

func (a *args) num(i int) int {
	if i >= len(a.tokens) {
		if a.strict && a.err == nil {
			a.err = fmt.Errorf("%w: missing argument %d", ErrMalformed, i)
		}

		return 0
	}

	return a.parseInt(a.tokens[i])
}

func (a *args) parseInt(tok string) int {
	if !a.strict {
		return atoi(tok)
	}

	n, err := strconv.Atoi(tok)
	if err != nil {
		if a.err == nil {
			a.err = fmt.Errorf("%w: bad number %q", ErrMalformed, tok)
		}

		return 0
	}

	return n
}

func (a *args) ints(from int) []int {
	if from >= len(a.tokens) {
		return []int{}
	}

	nums := make([]int, 0, len(a.tokens)-from)
	for _, tok := range a.tokens[from:] {
		nums = append(nums, a.parseInt(tok))
	}

	return nums
}
