package deck

import (
	"errors"
	"fmt"
	"strings"
)

// Slide is one slide's extracted text, in presentation order.
type Slide struct {
	Index int    // 0-based position in the deck
	Text  string // concatenated shape text, empty when the slide has none
}

// Deck is a parsed slide deck. Immutable after parsing.
type Deck struct {
	Title  string // Deck title (from metadata or filename)
	Slides []Slide
}

// ErrSlideOutOfRange is returned when a selection names a slide the deck
// does not have.
var ErrSlideOutOfRange = errors.New("slide index out of range")

// Selection picks which slides an operation applies to: either the whole
// deck or an explicit set of indices.
type Selection struct {
	all     bool
	indices []int
}

// All selects every slide in the deck.
func All() Selection {
	return Selection{all: true}
}

// Only selects the given 0-based slide indices, in the given order.
func Only(indices ...int) Selection {
	return Selection{indices: indices}
}

// IsAll reports whether the selection covers the whole deck.
func (s Selection) IsAll() bool {
	return s.all
}

// Resolve returns the selected slide indices. For a full-deck selection that
// is every index in order; for a subset the indices are returned as given.
// An index outside the deck is an error.
func (s Selection) Resolve(d *Deck) ([]int, error) {
	if s.all {
		indices := make([]int, len(d.Slides))
		for i := range d.Slides {
			indices[i] = i
		}
		return indices, nil
	}
	for _, idx := range s.indices {
		if idx < 0 || idx >= len(d.Slides) {
			return nil, fmt.Errorf("%w: %d (deck has %d slides)", ErrSlideOutOfRange, idx, len(d.Slides))
		}
	}
	return s.indices, nil
}

// JoinedText concatenates the selected slides' text. A full-deck selection
// joins the raw slide text with newlines; a subset prefixes each slide so
// the origin stays visible in the combined text.
func (d *Deck) JoinedText(sel Selection) (string, error) {
	indices, err := sel.Resolve(d)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(indices))
	for _, idx := range indices {
		if sel.all {
			parts = append(parts, d.Slides[idx].Text)
		} else {
			parts = append(parts, fmt.Sprintf("Slide %d: %s", idx+1, d.Slides[idx].Text))
		}
	}
	return strings.Join(parts, "\n"), nil
}
