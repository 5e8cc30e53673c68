package parser

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/awhite/deckbrief/internal/deck"
)

// MarkdownParser handles Marp-style Markdown decks using goldmark. Thematic
// breaks (---) separate slides; heading and body text on a slide are joined
// by single spaces.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*deck.Deck, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	d := &deck.Deck{
		Title: strings.TrimSuffix(filename, filepath.Ext(filename)),
	}

	var current []string

	flushSlide := func() {
		d.Slides = append(d.Slides, deck.Slide{
			Index: len(d.Slides),
			Text:  strings.Join(current, " "),
		})
		current = nil
	}

	started := false
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if _, ok := n.(*ast.ThematicBreak); ok {
			if started {
				flushSlide()
			}
			started = true
			continue
		}
		started = true
		if t := extractText(n, src); t != "" {
			current = append(current, strings.Join(strings.Fields(t), " "))
		}
	}
	if started {
		flushSlide()
	}

	return d, nil
}

// extractText gets the text content of a goldmark AST node. Blocks with
// inline children (paragraphs, headings, lists) are read through them; raw
// blocks like fenced code fall back to their source lines.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if !n.HasChildren() {
		if n.Type() == ast.TypeBlock {
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				line := lines.At(i)
				buf.Write(line.Value(src))
			}
		}
		return strings.TrimSpace(buf.String())
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			// Recurse for nested inlines and list items.
			s := extractText(c, src)
			if s != "" {
				if buf.Len() > 0 {
					buf.WriteByte('\n')
				}
				buf.WriteString(s)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
