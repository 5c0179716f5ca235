package server

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"creative_prompt_service/generator"
)

// renderHTML converts a result to a standalone HTML fragment, for callers
// that want a preview rather than JSON.
func renderHTML(res generator.Result) ([]byte, error) {
	var md strings.Builder
	fmt.Fprintf(&md, "# %s\n\n%s\n", res.Title, res.Body)
	if len(res.Tips) > 0 {
		md.WriteString("\n## Tips\n\n")
		for _, tip := range res.Tips {
			fmt.Fprintf(&md, "- %s\n", tip)
		}
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md.String()), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
