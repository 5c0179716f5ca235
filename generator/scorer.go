package generator

import (
	"regexp"
	"strings"
)

// Corruption indicator weights. Empirically tuned against observed model
// failures; do not derive or "improve" them.
const (
	weightHexEscape     = 3
	weightHTMLTag       = 2
	weightSuspiciousLit = 5
	weightBlockDrawing  = 3
	weightPunctRun      = 2
	weightSymbolCluster = 3

	// corruptionDensity is the fraction of line length the score must
	// exceed (strictly) before the line is dropped.
	corruptionDensity = 0.2
	// minCorruptLineLen: shorter lines are never flagged by the density
	// rule.
	minCorruptLineLen = 10
)

var (
	hexEscapeRe     = regexp.MustCompile(`\\x[0-9a-fA-F]{2}`)
	htmlTagRe       = regexp.MustCompile(`</?[a-zA-Z][^>]*>`)
	blockDrawingRe  = regexp.MustCompile(`[\x{2500}-\x{25FF}]`)
	punctRunRe      = regexp.MustCompile(`[!-/:-@\[-` + "`" + `{-~]{5,}`)
	symbolClusterRe = regexp.MustCompile(`[{}\[\]();=|\\<>]{3}`)

	// Fragments that have no business in creative-exercise prose.
	suspiciousLiterals = []string{
		"<script",
		"http://",
		"https://",
		"javascript:",
		"document.",
		"window.",
		".innerHTML",
		"eval(",
	}

	// Openers that mark a line as structurally malformed regardless of its
	// overall corruption density.
	suspiciousPrefixes = []string{
		`="<`,
		"{@",
		"[$",
		`\x`,
	}
)

// scoreLine computes the weighted corruption score of one line and whether
// the line starts with a malformed-syntax opener.
func scoreLine(line string) (score int, suspiciousPrefix bool) {
	score += weightHexEscape * len(hexEscapeRe.FindAllString(line, -1))
	score += weightHTMLTag * len(htmlTagRe.FindAllString(line, -1))
	for _, lit := range suspiciousLiterals {
		score += weightSuspiciousLit * strings.Count(line, lit)
	}
	score += weightBlockDrawing * len(blockDrawingRe.FindAllString(line, -1))
	score += weightPunctRun * len(punctRunRe.FindAllString(line, -1))
	score += weightSymbolCluster * len(symbolClusterRe.FindAllString(line, -1))

	trimmed := strings.TrimLeft(line, " \t")
	for _, p := range suspiciousPrefixes {
		if strings.HasPrefix(trimmed, p) {
			suspiciousPrefix = true
			break
		}
	}
	return score, suspiciousPrefix
}

// lineCorrupted applies the density rule: long enough to judge, and more
// than 20% of its length scored as corruption.
func lineCorrupted(line string) bool {
	stripped := strings.TrimSpace(line)
	if len(stripped) <= minCorruptLineLen {
		return false
	}
	score, _ := scoreLine(line)
	return float64(score) > corruptionDensity*float64(len(stripped))
}
