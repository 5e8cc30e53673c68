package chunker

import "strings"

// Defaults for the summarization input limits. The split threshold should
// track the input-token limit of whatever model is configured; these match
// the distilbart family.
const (
	DefaultChunkWords     = 200
	DefaultSplitThreshold = 1024
)

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// SplitWords splits text on whitespace boundaries into consecutive chunks of
// at most maxWords words each, preserving order. The split is lossless: the
// chunks' words concatenated reproduce the input word sequence exactly. Text
// already within the limit comes back as a single chunk; empty text yields
// nil.
func SplitWords(text string, maxWords int) []string {
	if maxWords <= 0 {
		maxWords = DefaultChunkWords
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	chunks := make([]string, 0, (len(words)+maxWords-1)/maxWords)
	for i := 0; i < len(words); i += maxWords {
		end := i + maxWords
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}
	return chunks
}
