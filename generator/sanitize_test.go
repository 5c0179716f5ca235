package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creative_prompt_service/logger"
)

func newTestSanitizer() *Sanitizer {
	return NewSanitizer(logger.NewNop())
}

func TestSanitizeDropsInjectedMarkupLine(t *testing.T) {
	s := newTestSanitizer()
	v := s.Sanitize("Hello\n<script>bad</script>\nWorld")
	require.True(t, v.Accepted)
	assert.Equal(t, "Hello\nWorld", v.Cleaned)
	require.Len(t, v.Reasons, 1)
	assert.Contains(t, v.Reasons[0], "line 2")
}

func TestSanitizeStripsControlCharacters(t *testing.T) {
	s := newTestSanitizer()
	v := s.Sanitize("a\x00b\x07c\td")
	require.True(t, v.Accepted)
	assert.Equal(t, "abc\td", v.Cleaned)
}

func TestSanitizeCleansResidualArtifacts(t *testing.T) {
	s := newTestSanitizer()
	v := s.Sanitize("A mostly fine line with a stray \\u00e9 remnant in the middle of it")
	require.True(t, v.Accepted)
	assert.NotContains(t, v.Cleaned, `é`)
}

func TestSanitizeCollapsesBlankLines(t *testing.T) {
	s := newTestSanitizer()
	v := s.Sanitize("first\n\n\n\n\nsecond")
	require.True(t, v.Accepted)
	assert.Equal(t, "first\n\nsecond", v.Cleaned)
}

func TestSanitizeRejectsUnprintableDocument(t *testing.T) {
	s := newTestSanitizer()
	text := strings.Repeat("a", 41) + strings.Repeat("￾", 10)
	v := s.Sanitize(text)
	assert.False(t, v.Accepted)
	assert.Empty(t, v.Cleaned)
	require.NotEmpty(t, v.Reasons)
	assert.Contains(t, v.Reasons[len(v.Reasons)-1], "unprintable")
}

func TestPrintabilityGateCountsRunes(t *testing.T) {
	s := newTestSanitizer()
	// 50 runes but 70 bytes: the noncharacters are 3 bytes each. The gate
	// measures characters, so this text is still exempt.
	text := strings.Repeat("a", 40) + strings.Repeat("￾", 10)
	v := s.Sanitize(text)
	assert.True(t, v.Accepted)
}

func TestSanitizeRejectsWhenNothingSurvives(t *testing.T) {
	s := newTestSanitizer()
	v := s.Sanitize("<a><b><c><d> abcdefghij klmnop\n<a><b><c><d> abcdefghij klmnop")
	assert.False(t, v.Accepted)
}

func TestWordSaladBoundary(t *testing.T) {
	s := newTestSanitizer()

	seven := "the Zorp Blick Quand Merv Trunk Vosk Grell and then some more plain words here today"
	require.Len(t, strings.Fields(seven), 16)
	v := s.Sanitize(seven)
	assert.True(t, v.Accepted, "run of 7 capitalized tokens is below the limit")

	eight := "the Zorp Blick Quand Merv Trunk Vosk Grell Plim and then some more plain words here"
	require.Len(t, strings.Fields(eight), 16)
	v = s.Sanitize(eight)
	assert.False(t, v.Accepted, "run of 8 capitalized tokens rejects the text")
	assert.Contains(t, v.Reasons[len(v.Reasons)-1], "capitalized run")
}

func TestWordSaladSkipsMarkerLines(t *testing.T) {
	s := newTestSanitizer()
	line := "- Zorp Blick Quand Merv Trunk Vosk Grell Plim Wick Nolt and assorted trailing words here"
	require.Greater(t, len(strings.Fields(line)), wordSaladMinTokens)
	v := s.Sanitize(line)
	assert.True(t, v.Accepted, "list items can legitimately chain capitalized names")
}

func TestWordSaladIgnoresFirstToken(t *testing.T) {
	s := newTestSanitizer()
	// Eight capitalized tokens, but the first token of the line never
	// counts, so the run is 7.
	line := "Zorp Blick Quand Merv Trunk Vosk Grell Plim and then some more plain words here today"
	require.Len(t, strings.Fields(line), 16)
	v := s.Sanitize(line)
	assert.True(t, v.Accepted)
}

func TestWordSaladAllowlistDoesNotExtendRun(t *testing.T) {
	s := newTestSanitizer()
	// "The" sits inside the capitalized chain but is a known proper-noun
	// fragment: it neither breaks nor extends the run, leaving it at 7.
	line := "the Zorp Blick Quand The Merv Trunk Vosk Grell plus seven more filler words here now"
	require.Len(t, strings.Fields(line), 16)
	v := s.Sanitize(line)
	assert.True(t, v.Accepted)
}

func TestSanitizeResidueCleaningCannotExposeSuspiciousPrefix(t *testing.T) {
	s := newTestSanitizer()
	// The raw line opens with a block-drawing run; cleaning removes it and
	// leaves "{@" at the front, which must drop the line rather than ship
	// a suspicious opener in accepted output.
	bad := "││{@ a perfectly ordinary sentence that is long enough to pass every gate"
	v := s.Sanitize(bad)
	assert.False(t, v.Accepted)
	require.NotEmpty(t, v.Reasons)
	assert.Contains(t, v.Reasons[0], "suspicious prefix")

	v = s.Sanitize("Keep this line.\n" + bad)
	require.True(t, v.Accepted)
	assert.Equal(t, "Keep this line.", v.Cleaned)

	second := s.Sanitize(v.Cleaned)
	require.True(t, second.Accepted)
	assert.Equal(t, v.Cleaned, second.Cleaned)
	assert.Empty(t, second.Reasons)
}

func TestSanitizeIdempotentOnAcceptedOutput(t *testing.T) {
	s := newTestSanitizer()
	messy := "# A Title\n\n\n\n\nBody with a stray \\x1b remnant and a ││ box run.\n\nMore text."
	first := s.Sanitize(messy)
	require.True(t, first.Accepted)

	second := s.Sanitize(first.Cleaned)
	require.True(t, second.Accepted)
	assert.Equal(t, first.Cleaned, second.Cleaned)
	assert.Empty(t, second.Reasons)
}
