package sqlbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var userColumns = Whitelist{
	Columns: map[string]string{
		"id":      `"id"`,
		"name":    `"name"`,
		"email":   `"email"`,
		"address": `"address"`,
		"role":    `"role"`,
	},
	DefaultSort: "id",
}

func TestBuilder_NoConditions(t *testing.T) {
	b := New(userColumns)

	assert.Equal(t, "", b.WhereClause())
	assert.Empty(t, b.Args())
}

func TestBuilder_SingleSubstring(t *testing.T) {
	b := New(userColumns).Substring("name", "alice")

	assert.Equal(t, ` WHERE "name" ILIKE $1`, b.WhereClause())
	assert.Equal(t, []any{"%alice%"}, b.Args())
}

func TestBuilder_EqualAndSubstringCombineWithAnd(t *testing.T) {
	b := New(userColumns).
		Equal("role", "OWNER").
		Substring("email", "example.com")

	assert.Equal(t, ` WHERE "role" = $1 AND "email" ILIKE $2`, b.WhereClause())
	assert.Equal(t, []any{"OWNER", "%example.com%"}, b.Args())
}

func TestBuilder_EmptyValuesIgnored(t *testing.T) {
	b := New(userColumns).
		Equal("role", "").
		Substring("name", "")

	assert.Equal(t, "", b.WhereClause())
	assert.Empty(t, b.Args())
}

func TestBuilder_UnknownFieldIgnored(t *testing.T) {
	b := New(userColumns).
		Substring("password_hash", "x").
		Equal(`"role"; DROP TABLE "User"; --`, "x")

	assert.Equal(t, "", b.WhereClause())
	assert.Empty(t, b.Args())
}

func TestBuilder_SeedArgsOffsetPlaceholders(t *testing.T) {
	b := New(userColumns, int64(42)).Substring("name", "pizza")

	assert.Equal(t, ` WHERE "name" ILIKE $2`, b.WhereClause())
	assert.Equal(t, []any{int64(42), "%pizza%"}, b.Args())
}

func TestBuilder_SubstringAnySharesOneParameter(t *testing.T) {
	b := New(userColumns).SubstringAny([]string{"name", "address"}, "main st")

	assert.Equal(t, ` WHERE ("name" ILIKE $1 OR "address" ILIKE $1)`, b.WhereClause())
	assert.Equal(t, []any{"%main st%"}, b.Args())
}

func TestBuilder_SubstringAnySingleFieldNoParens(t *testing.T) {
	b := New(userColumns).SubstringAny([]string{"name"}, "pizza")

	assert.Equal(t, ` WHERE "name" ILIKE $1`, b.WhereClause())
}

func TestBuilder_SubstringAnyDropsUnknownFields(t *testing.T) {
	b := New(userColumns).SubstringAny([]string{"nope", "also_nope"}, "x")

	assert.Equal(t, "", b.WhereClause())
	assert.Empty(t, b.Args())
}

func TestOrderBy_WhitelistedColumn(t *testing.T) {
	assert.Equal(t, ` ORDER BY "name" DESC`, OrderBy(userColumns, "name", "DESC"))
	assert.Equal(t, ` ORDER BY "email" ASC`, OrderBy(userColumns, "email", "asc"))
}

func TestOrderBy_UnknownSortKeyFallsBackToDefault(t *testing.T) {
	// An injected sort key must behave identically to omitting it.
	injected := OrderBy(userColumns, `password_hash; DROP TABLE "User"`, "ASC")
	omitted := OrderBy(userColumns, "", "")

	assert.Equal(t, omitted, injected)
	assert.Equal(t, ` ORDER BY "id" ASC`, injected)
}

func TestOrderBy_InvalidDirectionDefaultsToAsc(t *testing.T) {
	assert.Equal(t, ` ORDER BY "id" ASC`, OrderBy(userColumns, "id", "SIDEWAYS"))
	assert.Equal(t, ` ORDER BY "id" ASC`, OrderBy(userColumns, "id", "DESC; --"))
}

func TestOrderBy_CaseInsensitiveDirection(t *testing.T) {
	assert.Equal(t, ` ORDER BY "role" DESC`, OrderBy(userColumns, "role", "desc"))
}
