// Package migration plans and renders the timestamped SQL migrations that
// carry the schema changes of the enabled capabilities. Planning is pure;
// writing goes through the Sink interface.
package migration

import (
	"fmt"
	"strings"

	"github.com/authsmith/authsmith/internal/catalog"
)

// Verb selects between creating a new table and altering an existing one.
type Verb string

const (
	VerbCreate Verb = "create"
	VerbAlter  Verb = "alter"
)

// Plan describes one migration file pair: the verb'd table operation, its
// ordered column lines, its constraint statements, and the assigned
// timestamp that fixes replay order.
type Plan struct {
	Verb        Verb
	Name        string
	Table       string
	Columns     []catalog.Column
	Constraints []string
	Timestamp   int64
}

// UpFilename returns the forward migration filename.
func (p Plan) UpFilename() string {
	return fmt.Sprintf("%d_%s.up.sql", p.Timestamp, p.Name)
}

// DownFilename returns the rollback migration filename.
func (p Plan) DownFilename() string {
	return fmt.Sprintf("%d_%s.down.sql", p.Timestamp, p.Name)
}

// UpSQL renders the forward migration body: a header comment, the verb'd
// table statement with two-space-indented column lines, then the constraint
// statements.
func (p Plan) UpSQL() string {
	var b strings.Builder
	fmt.Fprintf(&b, "-- %s (generated by authsmith)\n", p.Name)

	switch p.Verb {
	case VerbCreate:
		fmt.Fprintf(&b, "CREATE TABLE %s (\n", p.Table)
		b.WriteString("  id bigserial PRIMARY KEY,\n")
		for i, c := range p.Columns {
			b.WriteString("  " + columnDef(c))
			if i < len(p.Columns)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		b.WriteString(");\n")
	case VerbAlter:
		fmt.Fprintf(&b, "ALTER TABLE %s\n", p.Table)
		for i, c := range p.Columns {
			b.WriteString("  ADD COLUMN " + columnDef(c))
			if i < len(p.Columns)-1 {
				b.WriteString(",\n")
			} else {
				b.WriteString(";\n")
			}
		}
	}

	for _, constraint := range p.Constraints {
		b.WriteString("\n" + constraint + "\n")
	}
	return b.String()
}

// DownSQL renders the rollback body.
func (p Plan) DownSQL() string {
	var b strings.Builder
	fmt.Fprintf(&b, "-- revert %s\n", p.Name)

	switch p.Verb {
	case VerbCreate:
		fmt.Fprintf(&b, "DROP TABLE IF EXISTS %s;\n", p.Table)
	case VerbAlter:
		fmt.Fprintf(&b, "ALTER TABLE %s\n", p.Table)
		for i, c := range p.Columns {
			fmt.Fprintf(&b, "  DROP COLUMN %s", c.Name)
			if i < len(p.Columns)-1 {
				b.WriteString(",\n")
			} else {
				b.WriteString(";\n")
			}
		}
	}
	return b.String()
}

// columnDef renders a single column definition line.
func columnDef(c catalog.Column) string {
	def := c.Name + " " + c.Type
	if c.NotNull {
		def += " NOT NULL"
	}
	if c.Default != "" {
		def += " DEFAULT " + c.Default
	}
	return def
}
