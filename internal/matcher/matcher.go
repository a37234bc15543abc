// Package matcher finds the custom command a recognised phrase refers to.
package matcher

import (
	"strconv"
	"strings"

	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/phrases"
	"github.com/chronois/avrora/internal/usage"
)

// Kind is the outcome of a match.
type Kind int

const (
	NoMatch Kind = iota
	Matched
	// BadNumber means a numeric slot captured something that is not an
	// integer. Matching stops there: no later entry and no builtin command
	// is tried.
	BadNumber
)

func (k Kind) String() string {
	switch k {
	case NoMatch:
		return "no match"
	case Matched:
		return "matched"
	case BadNumber:
		return "bad number"
	default:
		return "unknown"
	}
}

// Result describes the entry that matched and the action to run.
type Result struct {
	Kind     Kind
	Entry    domain.CommandEntry
	Action   string // action with the slot substituted
	Captured string
	Err      error // set for BadNumber
}

// Slot is the position of a [label] placeholder inside a pattern.
type Slot struct {
	Start int // index of '['
	End   int // index just after ']'
	Label string
}

// Numeric reports whether the slot only accepts integers.
func (s Slot) Numeric() bool {
	return s.Label == phrases.NumericSlot
}

// FindSlot locates the placeholder in pattern.
func FindSlot(pattern string) (Slot, bool) {
	start := strings.Index(pattern, "[")
	if start < 0 {
		return Slot{}, false
	}
	end := strings.Index(pattern[start:], "]")
	if end < 0 {
		return Slot{}, false
	}
	end += start + 1
	return Slot{Start: start, End: end, Label: pattern[start+1 : end-1]}, true
}

// Match tests input against entries in order and returns the first hit.
// The literal parts of a pattern match in any case; a captured slot keeps
// the case it has in input.
func Match(input string, entries []domain.CommandEntry) Result {
	for _, e := range entries {
		slot, hasSlot := FindSlot(e.Pattern)
		if !hasSlot {
			if _, ok := phrases.CutPrefixFold(input, e.Pattern); ok {
				return Result{Kind: Matched, Entry: e, Action: e.Action}
			}
			continue
		}

		captured, ok := capture(input, e.Pattern, slot)
		if !ok {
			continue
		}

		value := captured
		if slot.Numeric() {
			n, err := strconv.Atoi(strings.TrimSpace(captured))
			if err != nil {
				return Result{Kind: BadNumber, Entry: e, Captured: captured, Err: usage.BadNumber(captured)}
			}
			value = strconv.Itoa(n)
		}

		placeholder := e.Pattern[slot.Start:slot.End]
		return Result{
			Kind:     Matched,
			Entry:    e,
			Action:   strings.ReplaceAll(e.Action, placeholder, value),
			Captured: captured,
		}
	}

	return Result{Kind: NoMatch}
}

// capture returns the text of input that sits where the slot sits in
// pattern. The literal prefix and suffix must both match.
func capture(input, pattern string, slot Slot) (string, bool) {
	rest, ok := phrases.CutPrefixFold(input, pattern[:slot.Start])
	if !ok {
		return "", false
	}
	end, ok := phrases.HasSuffixFold(rest, pattern[slot.End:])
	if !ok {
		return "", false
	}
	return rest[:end], true
}
