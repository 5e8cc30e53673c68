package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/awhite/deckbrief/internal/deck"
)

// TextParser handles plain text exports where blank lines separate slides.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*deck.Deck, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var blocks []string
	var current []string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if len(current) > 0 {
				blocks = append(blocks, strings.Join(current, " "))
				current = nil
			}
		} else {
			current = append(current, line)
		}
	}
	if len(current) > 0 {
		blocks = append(blocks, strings.Join(current, " "))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	d := &deck.Deck{
		Title: strings.TrimSuffix(filename, ".txt"),
	}

	// Each block becomes a slide.
	for i, block := range blocks {
		d.Slides = append(d.Slides, deck.Slide{Index: i, Text: block})
	}

	return d, nil
}
