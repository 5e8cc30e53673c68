package summarize

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/awhite/deckbrief/internal/chunker"
	"github.com/awhite/deckbrief/internal/deck"
)

// Limits control when and how input text is split before summarization.
type Limits struct {
	SplitThreshold int     // word count above which the text is chunked
	ChunkWords     int     // words per chunk
	BudgetRatio    float64 // divisor for the summary-length ceiling
}

// DefaultLimits returns limits matching the default model.
func DefaultLimits() Limits {
	return Limits{
		SplitThreshold: chunker.DefaultSplitThreshold,
		ChunkWords:     chunker.DefaultChunkWords,
		BudgetRatio:    chunker.DefaultBudgetRatio,
	}
}

func (l Limits) withDefaults() Limits {
	if l.SplitThreshold <= 0 {
		l.SplitThreshold = chunker.DefaultSplitThreshold
	}
	if l.ChunkWords <= 0 {
		l.ChunkWords = chunker.DefaultChunkWords
	}
	if l.BudgetRatio <= 1 {
		l.BudgetRatio = chunker.DefaultBudgetRatio
	}
	return l
}

// Document summarizes the full deck text in one model call, or chunk by
// chunk when the input exceeds the split threshold. Chunk summaries are
// joined with single spaces in input order. Empty text returns an empty
// summary without calling the model.
func Document(ctx context.Context, s Summarizer, text string, lim Limits) (string, error) {
	lim = lim.withDefaults()

	words := chunker.WordCount(text)
	if words == 0 {
		return "", nil
	}

	if words <= lim.SplitThreshold {
		minLen, maxLen := chunker.Budget(words, lim.BudgetRatio)
		summary, err := s.Summarize(ctx, text, Options{MinLength: minLen, MaxLength: maxLen})
		if err != nil {
			return "", fmt.Errorf("summarize deck: %w", err)
		}
		return summary, nil
	}

	slog.Info("splitting text into chunks for the model input limit",
		"words", words, "threshold", lim.SplitThreshold)

	chunks := chunker.SplitWords(text, lim.ChunkWords)
	parts := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		slog.Info("summarizing chunk", "chunk", i+1, "total", len(chunks))

		minLen, maxLen := chunker.Budget(chunker.WordCount(chunk), lim.BudgetRatio)
		part, err := s.Summarize(ctx, chunk, Options{MinLength: minLen, MaxLength: maxLen})
		if err != nil {
			return "", fmt.Errorf("summarize chunk %d/%d: %w", i+1, len(chunks), err)
		}
		parts = append(parts, part)
	}

	return strings.Join(parts, " "), nil
}

// PerSlide summarizes each selected slide independently and returns a map
// keyed by slide index. Slides with no text are skipped without a model
// call; their entries are absent from the result.
func PerSlide(ctx context.Context, s Summarizer, d *deck.Deck, sel deck.Selection, lim Limits) (map[int]string, error) {
	lim = lim.withDefaults()

	indices, err := sel.Resolve(d)
	if err != nil {
		return nil, err
	}

	summaries := make(map[int]string)
	for _, idx := range indices {
		text := d.Slides[idx].Text
		words := chunker.WordCount(text)
		if words == 0 {
			continue
		}

		minLen, maxLen := chunker.Budget(words, lim.BudgetRatio)
		summary, err := s.Summarize(ctx, text, Options{MinLength: minLen, MaxLength: maxLen})
		if err != nil {
			return nil, fmt.Errorf("summarize slide %d: %w", idx, err)
		}
		summaries[idx] = summary
	}

	return summaries, nil
}
