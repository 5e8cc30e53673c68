package chunker

// Summary length bounds. The ceiling matches the output limit of the
// distilbart summarization models.
const (
	minSummaryFloor = 1
	maxSummaryFloor = 5
	maxSummaryCap   = 200

	// DefaultBudgetRatio divides the input word count to get the summary
	// ceiling. Tunable per model; anything between 1.25 and 1.5 works.
	DefaultBudgetRatio = 1.5
)

// Budget derives (minLength, maxLength) summary bounds from the word count
// of the input segment: the minimum is a tenth of the input, the maximum the
// input divided by ratio, capped at 200. The minimum never exceeds the
// maximum, so the pair is always a valid range.
func Budget(words int, ratio float64) (minLength, maxLength int) {
	if ratio <= 1 {
		ratio = DefaultBudgetRatio
	}

	minLength = words / 10
	if minLength < minSummaryFloor {
		minLength = minSummaryFloor
	}

	maxLength = int(float64(words) / ratio)
	if maxLength > maxSummaryCap {
		maxLength = maxSummaryCap
	}
	if maxLength < maxSummaryFloor {
		maxLength = maxSummaryFloor
	}

	if minLength > maxLength {
		minLength = maxLength
	}
	return minLength, maxLength
}
