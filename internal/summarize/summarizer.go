package summarize

import (
	"context"
	"fmt"

	"github.com/awhite/deckbrief/internal/config"
)

// Options bound the generated summary length. Sample left false keeps the
// model output deterministic.
type Options struct {
	MinLength int
	MaxLength int
	Sample    bool
}

// Summarizer produces a condensed paraphrase of the input text.
type Summarizer interface {
	Summarize(ctx context.Context, text string, opts Options) (string, error)
}

// ErrUnsupportedBackend is returned when the configured backend is unknown.
var ErrUnsupportedBackend = fmt.Errorf("unsupported summarizer backend")

// New creates a summarizer for the configured backend.
func New(cfg config.Config) (Summarizer, error) {
	switch cfg.Backend {
	case "", config.BackendHuggingFace:
		return NewHFClient(cfg.HFAPIKey, cfg.HFModel), nil
	case config.BackendOpenAI:
		return NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBackend, cfg.Backend)
	}
}
