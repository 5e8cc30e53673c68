package chunker

import (
	"fmt"
	"strings"
	"testing"
)

func words(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("w%d", i)
	}
	return out
}

func TestSplitWords_LosslessAndBounded(t *testing.T) {
	tests := []struct {
		words    int
		maxWords int
		want     int // expected chunk count: ceil(words/maxWords)
	}{
		{1, 200, 1},
		{199, 200, 1},
		{200, 200, 1},
		{201, 200, 2},
		{400, 200, 2},
		{401, 200, 3},
		{1025, 200, 6},
		{7, 3, 3},
	}

	for _, tt := range tests {
		input := strings.Join(words(tt.words), " ")
		chunks := SplitWords(input, tt.maxWords)

		if len(chunks) != tt.want {
			t.Errorf("words=%d max=%d: expected %d chunks, got %d", tt.words, tt.maxWords, tt.want, len(chunks))
		}

		// Every chunk except possibly the last is exactly maxWords; none exceeds it.
		for i, c := range chunks {
			n := WordCount(c)
			if n > tt.maxWords {
				t.Errorf("words=%d max=%d: chunk %d has %d words", tt.words, tt.maxWords, i, n)
			}
			if i < len(chunks)-1 && n != tt.maxWords {
				t.Errorf("words=%d max=%d: non-final chunk %d has %d words", tt.words, tt.maxWords, i, n)
			}
		}

		// Lossless: rejoining the chunks reproduces the word sequence.
		if rejoined := strings.Join(chunks, " "); rejoined != input {
			t.Errorf("words=%d max=%d: split is not lossless", tt.words, tt.maxWords)
		}
	}
}

func TestSplitWords_ShortTextSingleChunk(t *testing.T) {
	chunks := SplitWords("already short enough", 200)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != "already short enough" {
		t.Errorf("expected input back unchanged, got %q", chunks[0])
	}
}

func TestSplitWords_NormalizesWhitespace(t *testing.T) {
	chunks := SplitWords("one\ttwo\n\nthree   four", 2)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if chunks[0] != "one two" || chunks[1] != "three four" {
		t.Errorf("unexpected chunks: %q", chunks)
	}
}

func TestSplitWords_EmptyText(t *testing.T) {
	if chunks := SplitWords("", 200); chunks != nil {
		t.Errorf("expected nil for empty text, got %q", chunks)
	}
	if chunks := SplitWords("   \n\t ", 200); chunks != nil {
		t.Errorf("expected nil for blank text, got %q", chunks)
	}
}

func TestSplitWords_ZeroLimitUsesDefault(t *testing.T) {
	input := strings.Join(words(DefaultChunkWords+1), " ")
	chunks := SplitWords(input, 0)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks with default limit, got %d", len(chunks))
	}
}

func TestBudget_RangeInvariants(t *testing.T) {
	for _, ratio := range []float64{1.25, 1.5, 0} {
		for n := 1; n <= 5000; n++ {
			minLen, maxLen := Budget(n, ratio)
			if minLen < 1 {
				t.Fatalf("n=%d ratio=%v: min %d < 1", n, ratio, minLen)
			}
			if maxLen < 5 {
				t.Fatalf("n=%d ratio=%v: max %d < 5", n, ratio, maxLen)
			}
			if maxLen > 200 {
				t.Fatalf("n=%d ratio=%v: max %d > 200", n, ratio, maxLen)
			}
			if minLen > maxLen {
				t.Fatalf("n=%d ratio=%v: min %d > max %d", n, ratio, minLen, maxLen)
			}
		}
	}
}

func TestBudget_KnownValues(t *testing.T) {
	tests := []struct {
		words   int
		ratio   float64
		wantMin int
		wantMax int
	}{
		{1, 1.5, 1, 5},
		{10, 1.5, 1, 6},
		{200, 1.5, 20, 133},
		{1024, 1.5, 102, 200},
		{3000, 1.5, 200, 200}, // minimum clamped to the capped maximum
		{200, 1.25, 20, 160},
	}

	for _, tt := range tests {
		minLen, maxLen := Budget(tt.words, tt.ratio)
		if minLen != tt.wantMin || maxLen != tt.wantMax {
			t.Errorf("Budget(%d, %v) = (%d, %d), expected (%d, %d)",
				tt.words, tt.ratio, minLen, maxLen, tt.wantMin, tt.wantMax)
		}
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"Hello world", 2},
		{"a\tb\nc  d", 4},
	}
	for _, tt := range tests {
		if got := WordCount(tt.text); got != tt.want {
			t.Errorf("WordCount(%q) = %d, expected %d", tt.text, got, tt.want)
		}
	}
}
