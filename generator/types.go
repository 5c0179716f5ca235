package generator

import "fmt"

// Kind names one generation endpoint: what sort of creative exercise is
// being produced.
type Kind string

const (
	KindWriting Kind = "writing"
	KindSound   Kind = "sound"
	KindChords  Kind = "chords"
	KindDrawing Kind = "drawing"
)

// Request is one generation request: which kind, which categories the user
// selected, and who asked (for tracing only).
type Request struct {
	Kind       Kind
	Categories []string
	UserID     string
}

// Result is the finished exercise handed to the presentation layer. It looks
// the same whether the model or a template produced it; Metadata["source"]
// carries the provenance flag ("ai" or "template").
type Result struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Body     string         `json:"content"`
	Tips     []string       `json:"tips"`
	Metadata map[string]any `json:"metadata"`
}

// Verdict is the sanitizer's call on one block of generated text.
type Verdict struct {
	Accepted bool
	Cleaned  string
	Reasons  []string
}

// ConfigError marks a caller-fault problem: empty category selection, an
// unknown kind, an empty anchor pool. It is the only error Generate returns.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "generator: " + e.Reason
}

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}
