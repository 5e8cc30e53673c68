package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/awhite/deckbrief/internal/deck"
)

// Parser converts a slide-deck file into a Deck.
type Parser interface {
	Parse(r io.Reader, filename string) (*deck.Deck, error)
}

// SupportedExtensions lists deck formats this tool can handle.
var SupportedExtensions = map[string]bool{
	".pptx":     true,
	".ppsx":     true,
	".pdf":      true,
	".md":       true,
	".markdown": true,
	".txt":      true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pptx", ".ppsx":
		return &PPTXParser{}, nil
	case ".pdf":
		return &PDFParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".txt":
		return &TextParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
