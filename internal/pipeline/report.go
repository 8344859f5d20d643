package pipeline

import (
	"fmt"
	"strings"
)

// Report summarizes one installer run: what was written, what was skipped,
// and the follow-up instructions shown to the operator.
type Report struct {
	ConfigPatched bool
	Migrations    []string // migration file names, in generation order
	Scaffolds     []string // project-relative scaffold paths
	Warnings      []string // non-fatal stage skips
	Instructions  []string // accumulated follow-up instructions
}

// appendInstruction adds one follow-up instruction line.
func (r *Report) appendInstruction(format string, args ...any) {
	r.Instructions = append(r.Instructions, fmt.Sprintf(format, args...))
}

// Markdown renders the report as a markdown document for terminal display.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("# authsmith install\n\n")

	if len(r.Migrations) > 0 {
		b.WriteString("## Migrations\n\n")
		for _, m := range r.Migrations {
			fmt.Fprintf(&b, "- `%s`\n", m)
		}
		b.WriteString("\n")
	}

	if len(r.Scaffolds) > 0 {
		b.WriteString("## Generated files\n\n")
		for _, s := range r.Scaffolds {
			fmt.Fprintf(&b, "- `%s`\n", s)
		}
		b.WriteString("\n")
	}

	if len(r.Warnings) > 0 {
		b.WriteString("## Skipped\n\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
		b.WriteString("\n")
	}

	if len(r.Instructions) > 0 {
		b.WriteString("## Next steps\n\n")
		for i, inst := range r.Instructions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, inst)
		}
	}

	return b.String()
}
