package telemetry

import (
	"io"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/intersense/internal/ui/output"
	"go.trai.ch/intersense/internal/ui/style"
)

// VerdictKey is the span attribute rendered as the outcome of a trace line.
const VerdictKey = "verdict"

// Field is one rendered span attribute.
type Field struct {
	Key   string
	Value string
}

// TraceLine is the printable form of an ended span.
type TraceLine struct {
	Name       string
	Verdict    string
	Attributes []Field
	Err        string
	Nested     bool
}

// Printer renders trace lines, one per span, to a terminal or plain writer.
type Printer struct {
	mu  sync.Mutex
	out *termenv.Output
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{out: output.New(w)}
}

// Print writes line as "<icon> <name> <verdict> key=value ...".
func (p *Printer) Print(line TraceLine) {
	icon, color := verdictStyle(line)

	parts := []string{icon, line.Name}
	if line.Verdict != "" {
		parts = append(parts, line.Verdict)
	}
	for _, f := range line.Attributes {
		parts = append(parts, f.Key+"="+f.Value)
	}
	if line.Err != "" {
		parts = append(parts, "error="+line.Err)
	}

	text := strings.Join(parts, " ")
	if line.Nested {
		text = "  " + text
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	styled := p.out.String(text).Foreground(color)
	_, _ = p.out.WriteString(styled.String() + "\n")
}

func verdictStyle(line TraceLine) (string, termenv.Color) {
	if line.Err != "" {
		return style.Cross, termenv.RGBColor(string(style.Red))
	}

	switch line.Verdict {
	case "fresh":
		return style.Check, termenv.RGBColor(string(style.Green))
	case "stale":
		return style.Warning, termenv.RGBColor(string(style.Yellow))
	case "no_cache":
		return style.Cross, termenv.RGBColor(string(style.Red))
	case "defer":
		return style.Arrow, termenv.RGBColor(string(style.Slate))
	default:
		return style.Dot, termenv.RGBColor(string(style.Iris))
	}
}
