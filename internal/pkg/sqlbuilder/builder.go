// Package sqlbuilder assembles parameterized SQL fragments for list
// endpoints. Identifiers only ever come from a column whitelist; user input
// only ever travels as bound positional parameters.
package sqlbuilder

import (
	"strconv"
	"strings"
)

// Whitelist maps logical field names to quoted physical column identifiers.
// DefaultSort names the logical field used when a sort key is unknown.
type Whitelist struct {
	Columns     map[string]string
	DefaultSort string
}

// Column resolves a logical field name to its physical column.
func (w Whitelist) Column(field string) (string, bool) {
	col, ok := w.Columns[field]
	return col, ok
}

// Builder accumulates AND-combined conditions with positional parameters.
// Seed arguments occupy the leading placeholders so callers can bind values
// (e.g. the requesting user's id) before any filter is added.
type Builder struct {
	whitelist Whitelist
	conds     []string
	args      []any
}

// New creates a Builder for the given whitelist. Seed values are bound as
// $1..$n before any condition is added.
func New(whitelist Whitelist, seed ...any) *Builder {
	return &Builder{
		whitelist: whitelist,
		args:      append([]any{}, seed...),
	}
}

func (b *Builder) bind(value any) string {
	b.args = append(b.args, value)
	return placeholder(len(b.args))
}

// Substring adds a case-insensitive substring-match condition on field.
// Unknown fields and empty values are ignored.
func (b *Builder) Substring(field, value string) *Builder {
	col, ok := b.whitelist.Column(field)
	if !ok || value == "" {
		return b
	}
	b.conds = append(b.conds, col+" ILIKE "+b.bind("%"+value+"%"))
	return b
}

// Equal adds an exact-match condition on field. Unknown fields and empty
// values are ignored.
func (b *Builder) Equal(field, value string) *Builder {
	col, ok := b.whitelist.Column(field)
	if !ok || value == "" {
		return b
	}
	b.conds = append(b.conds, col+" = "+b.bind(value))
	return b
}

// SubstringAny adds one condition matching value against any of the fields
// (OR-combined), sharing a single bound parameter. Unknown fields are
// dropped; the condition is omitted when no field survives or value is empty.
func (b *Builder) SubstringAny(fields []string, value string) *Builder {
	if value == "" {
		return b
	}
	cols := make([]string, 0, len(fields))
	for _, f := range fields {
		if col, ok := b.whitelist.Column(f); ok {
			cols = append(cols, col)
		}
	}
	if len(cols) == 0 {
		return b
	}
	ph := b.bind("%" + value + "%")
	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = col + " ILIKE " + ph
	}
	cond := strings.Join(parts, " OR ")
	if len(parts) > 1 {
		cond = "(" + cond + ")"
	}
	b.conds = append(b.conds, cond)
	return b
}

// WhereClause returns " WHERE c1 AND c2 ..." or the empty string when no
// condition was added.
func (b *Builder) WhereClause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// Args returns the positional parameters in placeholder order.
func (b *Builder) Args() []any {
	return b.args
}

// OrderBy returns an " ORDER BY col DIR" clause. Sort keys outside the
// whitelist fall back to the whitelist's default field; the direction is
// restricted to ASC or DESC (case-insensitive), defaulting to ASC. The
// emitted identifier always comes from the whitelist, never from input.
func OrderBy(whitelist Whitelist, sortBy, order string) string {
	col, ok := whitelist.Column(sortBy)
	if !ok {
		col = whitelist.Columns[whitelist.DefaultSort]
	}

	dir := "ASC"
	if strings.EqualFold(order, "DESC") {
		dir = "DESC"
	}
	return " ORDER BY " + col + " " + dir
}

// placeholder returns the pgx positional placeholder for 1-based index n.
func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}
