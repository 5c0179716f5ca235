package generator

import (
	"regexp"
	"strings"
)

const maxTips = 3

var (
	headerTitleRe = regexp.MustCompile(`^#{1,3}\s+(.+)$`)
	boldTitleRe   = regexp.MustCompile(`^\*\*(.+)\*\*:?$`)
	labelTitleRe  = regexp.MustCompile(`(?i)^title:\s*(.+)$`)

	tipsHeaderRe = regexp.MustCompile(`(?i)^\s*(?:#{1,6}\s+.*tips.*|\*\*[^*]*tips[^*]*\*\*:?)\s*$`)
	bulletRe     = regexp.MustCompile(`^\s*[-*•]\s+(.+)$`)
)

// extractTitle returns the first short header-like line: a markdown header,
// a whole-line bold span, or a "Title:" label. Empty when nothing matches;
// the strategy then synthesizes a default from the request.
func extractTitle(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, re := range []*regexp.Regexp{headerTitleRe, boldTitleRe, labelTitleRe} {
			if m := re.FindStringSubmatch(line); len(m) == 2 {
				title := strings.TrimSpace(m[1])
				if title != "" && len(title) <= 80 {
					return title
				}
			}
		}
		// Only the first non-blank line is considered; a title below body
		// text is not a title.
		break
	}
	return ""
}

// extractTips pulls up to maxTips bullet lines out of a "Tips" section (a
// heading or bold label containing the word Tips, followed by bullets) and
// returns the body with that section removed.
func extractTips(text string) ([]string, string) {
	lines := strings.Split(text, "\n")
	start := -1
	for i, line := range lines {
		if tipsHeaderRe.MatchString(line) {
			start = i
			break
		}
	}
	if start == -1 {
		return nil, text
	}

	var tips []string
	end := start + 1
	for end < len(lines) {
		line := lines[end]
		if strings.TrimSpace(line) == "" && len(tips) == 0 {
			end++
			continue
		}
		m := bulletRe.FindStringSubmatch(line)
		if m == nil {
			break
		}
		if len(tips) < maxTips {
			tips = append(tips, strings.TrimSpace(m[1]))
		}
		end++
	}
	if len(tips) == 0 {
		return nil, text
	}

	remainder := append([]string{}, lines[:start]...)
	remainder = append(remainder, lines[end:]...)
	body := strings.TrimSpace(strings.Join(remainder, "\n"))
	return tips, body
}

// stripTitleLine removes the line the title was read from, so the title does
// not repeat inside the body.
func stripTitleLine(text, title string) string {
	if title == "" {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.Contains(trimmed, title) {
			return strings.TrimSpace(strings.Join(append(lines[:i:i], lines[i+1:]...), "\n"))
		}
		break
	}
	return text
}
