package quoted

import (
	"errors"
	"strconv"
)

// ErrUnmatchedDelimiter is returned when the input ends with a string
// literal still open, which happens exactly when the input contains an odd
// number of delimiter characters.
var ErrUnmatchedDelimiter = errors.New("unmatched delimiter")

// DefaultDelimiter is used by extractors whose Options do not set one.
const DefaultDelimiter = '\''

// sentinel is appended to the scanned text so that a delimiter pending at
// the end of the input resolves the same way as one followed by an ordinary
// character. NUL can never be a delimiter, and the scan never emits it.
const sentinel = rune(0)

// parseState tracks where the scan is relative to a string literal.
type parseState int

const (
	// stateOutside means the scan is not inside any literal.
	stateOutside parseState = iota
	// stateInside means the scan is accumulating the contents of an open
	// literal.
	stateInside
	// statePendingDelimiter means a delimiter was just seen inside a
	// literal; the next character decides whether it closed the literal or
	// began an escape.
	statePendingDelimiter
)

var parseStates = [...]string{
	stateOutside:          "outside",
	stateInside:           "inside",
	statePendingDelimiter: "pending delimiter",
}

func (st parseState) String() string {
	s := ""
	if 0 <= int(st) && int(st) < len(parseStates) {
		s = parseStates[st]
	}
	if s == "" {
		s = "parseState(" + strconv.Itoa(int(st)) + ")"
	}
	return s
}

// Options configure an Extractor.
type Options struct {
	// Delimiter opens and closes string literals. The zero value selects
	// DefaultDelimiter.
	Delimiter rune
}

// Extractor recognizes string literals quoted by a fixed delimiter, with
// doubled delimiters standing for one literal delimiter character.
type Extractor struct {
	delim rune
}

// NewExtractor creates an Extractor. A nil opts selects the defaults.
func NewExtractor(opts *Options) *Extractor {
	delim := DefaultDelimiter
	if opts != nil && opts.Delimiter != 0 {
		delim = opts.Delimiter
	}
	return &Extractor{delim: delim}
}

// Delimiter returns the delimiter the extractor recognizes.
func (x *Extractor) Delimiter() rune { return x.delim }

// Extract returns the decoded contents of every string literal in text, in
// the order the literals close. It fails with ErrUnmatchedDelimiter when a
// literal is left open at the end of text, in which case no literals are
// returned, not even ones that closed before the open one.
//
// Extract scans each character exactly once, except that the character
// after a pending delimiter is reprocessed when it turns out not to be part
// of an escape. NUL characters in text are ordinary non-delimiter
// characters and pass through into literal contents unchanged.
func (x *Extractor) Extract(text string) ([]string, error) {
	var (
		state   = stateOutside
		partial []rune
		out     []string
	)
	for _, ch := range text + string(sentinel) {
		if state == statePendingDelimiter {
			if ch == x.delim {
				// Doubled delimiter: an escaped delimiter character.
				partial = append(partial, x.delim)
				state = stateInside
				continue
			}
			// The pending delimiter closed the literal. Emit it, then let
			// ch fall through to be processed from outside.
			out = append(out, string(partial))
			partial = partial[:0]
			state = stateOutside
		}
		switch state {
		case stateOutside:
			if ch == x.delim {
				state = stateInside
			}
		case stateInside:
			if ch == x.delim {
				state = statePendingDelimiter
			} else {
				partial = append(partial, ch)
			}
		}
	}
	if state != stateOutside {
		return nil, ErrUnmatchedDelimiter
	}
	return out, nil
}

// Extract extracts string literals from text using the default delimiter.
func Extract(text string) ([]string, error) {
	return NewExtractor(nil).Extract(text)
}
