// Package report renders the run's results to the console. Pure formatting;
// nothing here keeps state between calls.
package report

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/awhite/deckbrief/internal/refs"
)

// ErrSaveNotImplemented is returned by Save unconditionally.
var ErrSaveNotImplemented = errors.New("saving reports to file is not implemented")

// WriteSummary prints the summary as a numbered list, one sentence per line.
func WriteSummary(w io.Writer, summary string) error {
	sentences := splitSentences(summary)
	if len(sentences) == 0 {
		_, err := fmt.Fprintln(w, "(no summary)")
		return err
	}
	for i, sentence := range sentences {
		if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, sentence); err != nil {
			return err
		}
	}
	return nil
}

// WriteSlideSummaries prints per-slide summaries in slide order.
func WriteSlideSummaries(w io.Writer, summaries map[int]string) error {
	indices := make([]int, 0, len(summaries))
	for idx := range summaries {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	for _, idx := range indices {
		if _, err := fmt.Fprintf(w, "Slide %d: %s\n", idx+1, summaries[idx]); err != nil {
			return err
		}
	}
	return nil
}

// WriteReferences prints the detected citations as an aligned table. The
// not-found sentinel is rendered as text rather than an index.
func WriteReferences(w io.Writer, references []refs.Reference) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CITATION\tSLIDE")
	for _, r := range references {
		slide := "not found"
		if r.Slide != refs.SlideNotFound {
			slide = strconv.Itoa(r.Slide)
		}
		fmt.Fprintf(tw, "%s\t%s\n", r.Citation, slide)
	}
	return tw.Flush()
}

// Save is declared for parity with the display surface, but writing reports
// to disk has never been implemented and always fails.
func Save(path, summary string, references []refs.Reference) error {
	return ErrSaveNotImplemented
}

// splitSentences does basic sentence splitting on terminal punctuation
// followed by a space.
func splitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	var current strings.Builder

	for i, r := range text {
		current.WriteRune(r)
		if (r == '.' || r == '!' || r == '?') && i+1 < len(text) && text[i+1] == ' ' {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}
