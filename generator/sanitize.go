package generator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"creative_prompt_service/logger"
)

const (
	// printabilityMinLen: texts at or below this length skip the
	// whole-document printability gate.
	printabilityMinLen = 50
	// printabilityThreshold is the minimum fraction of printable runes an
	// accepted document must have.
	printabilityThreshold = 0.85

	// wordSaladMinTokens: only lines with more tokens than this are judged
	// for capitalized-run degeneration.
	wordSaladMinTokens = 15
	// wordSaladRunLimit: a run of this many consecutive capitalized tokens
	// rejects the whole text.
	wordSaladRunLimit = 8
)

var (
	unicodeEscapeRe = regexp.MustCompile(`\\u[0-9a-fA-F]{4}`)
	blockRunRe      = regexp.MustCompile(`[\x{2500}-\x{25FF}]+`)
	blankRunRe      = regexp.MustCompile(`\n{3,}`)
	markerLineRe    = regexp.MustCompile(`^\s*(#|[-*+•>|]|\d+[.)])`)

	// Capitalized tokens that legitimately chain inside proper-noun phrases
	// and therefore do not count toward a word-salad run.
	properNounFragments = map[string]bool{
		"I":    true,
		"A":    true,
		"An":   true,
		"The":  true,
		"New":  true,
		"San":  true,
		"Los":  true,
		"La":   true,
		"Le":   true,
		"De":   true,
		"Van":  true,
		"Von":  true,
		"St.":  true,
		"Dr.":  true,
		"Mr.":  true,
		"Mrs.": true,
	}
)

// Sanitizer scrubs model output before it can reach a user. Rejection is a
// normal outcome: the caller falls back to a template, it never propagates.
type Sanitizer struct {
	log *logger.Logger
}

func NewSanitizer(log *logger.Logger) *Sanitizer {
	return &Sanitizer{log: log.With("component", "sanitizer")}
}

// Sanitize cleans text or rejects it. Accepted output is a fixed point:
// sanitizing it again changes nothing.
func (s *Sanitizer) Sanitize(text string) Verdict {
	v := Verdict{}

	text = stripControl(text)

	var kept []string
	for i, line := range strings.Split(text, "\n") {
		score, suspicious := scoreLine(line)
		if !lineCorrupted(line) && !suspicious {
			// Residue cleaning shortens the line and can expose a
			// suspicious opener, so the kept form must pass the same
			// checks as the raw one.
			line = cleanResidue(line)
			score, suspicious = scoreLine(line)
		}
		switch {
		case lineCorrupted(line):
			reason := fmt.Sprintf("line %d dropped: corruption score %d exceeds density limit", i+1, score)
			v.Reasons = append(v.Reasons, reason)
			s.log.Debug("dropping corrupted line", "line", i+1, "score", score)
		case suspicious:
			reason := fmt.Sprintf("line %d dropped: suspicious prefix", i+1)
			v.Reasons = append(v.Reasons, reason)
			s.log.Debug("dropping suspicious-prefix line", "line", i+1)
		default:
			kept = append(kept, line)
		}
	}

	cleaned := strings.Join(kept, "\n")
	cleaned = blankRunRe.ReplaceAllString(cleaned, "\n\n")
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == "" {
		v.Reasons = append(v.Reasons, "rejected: nothing left after line filtering")
		s.log.Info("sanitizer rejected text", "reason", "empty")
		return v
	}
	if !printableEnough(cleaned) {
		v.Reasons = append(v.Reasons, "rejected: text mostly unprintable after line filtering")
		s.log.Info("sanitizer rejected text", "reason", "printability")
		return v
	}
	if run, salad := wordSaladRun(cleaned); salad {
		v.Reasons = append(v.Reasons, fmt.Sprintf("rejected: capitalized run of %d tokens", run))
		s.log.Info("sanitizer rejected text", "reason", "word salad", "run", run)
		return v
	}

	v.Accepted = true
	v.Cleaned = cleaned
	return v
}

// stripControl removes every control rune except newline, carriage return,
// and tab.
func stripControl(text string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, text)
}

// cleanResidue removes minor artifacts from a line that is otherwise worth
// keeping: stray hex/unicode escape remnants and block-drawing runs.
func cleanResidue(line string) string {
	line = hexEscapeRe.ReplaceAllString(line, "")
	line = unicodeEscapeRe.ReplaceAllString(line, "")
	line = blockRunRe.ReplaceAllString(line, "")
	return line
}

func printableEnough(text string) bool {
	total, printable := 0, 0
	for _, r := range text {
		total++
		if unicode.IsPrint(r) || r == '\n' || r == '\r' || r == '\t' {
			printable++
		}
	}
	// The gate only applies past 50 characters, counted in runes.
	if total <= printabilityMinLen {
		return true
	}
	return float64(printable)/float64(total) >= printabilityThreshold
}

// wordSaladRun scans prose lines for long chains of capitalized tokens. The
// first token of a line never counts (sentence case), marker lines (headers,
// bullets, numbered items) are skipped entirely, and known proper-noun
// fragments neither extend nor break a run.
func wordSaladRun(text string) (int, bool) {
	for _, line := range strings.Split(text, "\n") {
		tokens := strings.Fields(line)
		if len(tokens) <= wordSaladMinTokens {
			continue
		}
		if markerLineRe.MatchString(line) {
			continue
		}
		run := 0
		for _, tok := range tokens[1:] {
			if properNounFragments[tok] {
				continue
			}
			if startsUpper(tok) {
				run++
				if run >= wordSaladRunLimit {
					return run, true
				}
			} else {
				run = 0
			}
		}
	}
	return 0, false
}

func startsUpper(tok string) bool {
	for _, r := range tok {
		return unicode.IsUpper(r)
	}
	return false
}
