package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/awhite/deckbrief/internal/deck"
)

// PPTXParser handles PowerPoint .pptx and .ppsx files. Both are OOXML zip
// packages with one XML part per slide under ppt/slides/.
type PPTXParser struct{}

func (p *PPTXParser) Parse(r io.Reader, filename string) (*deck.Deck, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read pptx: %w", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("parse pptx: %w", err)
	}

	parts := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		parts[f.Name] = f
	}
	if _, ok := parts["ppt/presentation.xml"]; !ok {
		return nil, fmt.Errorf("parse pptx: %s is not a presentation package", filename)
	}

	d := &deck.Deck{
		Title: strings.TrimSuffix(filename, filepath.Ext(filename)),
	}

	// Slide parts are named slide1.xml, slide2.xml, ... in presentation order.
	for i := 1; ; i++ {
		f, ok := parts[fmt.Sprintf("ppt/slides/slide%d.xml", i)]
		if !ok {
			break
		}
		text, err := extractSlideText(f)
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", i, err)
		}
		d.Slides = append(d.Slides, deck.Slide{Index: i - 1, Text: text})
	}

	return d, nil
}

// extractSlideText streams one slide's XML and collects the text of every
// shape. Non-blank shape texts are joined by single spaces; a slide with no
// text yields the empty string.
func extractSlideText(f *zip.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("open slide part: %w", err)
	}
	defer rc.Close()

	dec := xml.NewDecoder(rc)
	dec.CharsetReader = charset.NewReaderLabel

	var shapeTexts []string
	var shape strings.Builder
	inBody := false // inside a txBody element
	inRun := false  // inside an a:t text run

	flushShape := func() {
		if t := strings.Join(strings.Fields(shape.String()), " "); t != "" {
			shapeTexts = append(shapeTexts, t)
		}
		shape.Reset()
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decode slide xml: %w", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "txBody":
				inBody = true
			case "t":
				if inBody {
					inRun = true
				}
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "txBody":
				inBody = false
				flushShape()
			case "t":
				inRun = false
			case "p":
				// Paragraph boundary within a shape separates words.
				if inBody {
					shape.WriteByte(' ')
				}
			}
		case xml.CharData:
			if inRun {
				shape.Write(el)
			}
		}
	}
	flushShape()

	return strings.Join(shapeTexts, " "), nil
}
