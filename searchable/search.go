package searchable

import (
	"fmt"

	"github.com/nonibytes/searchable/searchable/ddl"
	"github.com/nonibytes/searchable/searchable/query"
)

// ParseQuery turns free-form search input into the tsquery expression
// the full-text match operator accepts. Malformed input never surfaces
// as an error: anything that fails to normalize or parse yields the
// empty string, which callers treat as "apply no filter". A broken
// search string must not break the surrounding read path.
func ParseQuery(raw string) string {
	normalized := query.Normalize(raw)
	if normalized == "" {
		return ""
	}

	expr, err := query.Parse(normalized)
	if err != nil {
		return ""
	}
	return expr.String()
}

// Query is the filterable query object supplied by the caller. Where
// adds a predicate, Bind attaches a named parameter value. Both return
// the updated query.
type Query interface {
	Where(condition string) Query
	Bind(name string, value any) Query
}

// ApplyFilter constrains q by a full-text match of raw against the
// given vector selector. The canonical expression is bound as the
// parameter named "term". When the expression comes out empty the
// input query is returned unchanged. An empty catalog falls back to
// the default.
func ApplyFilter(q Query, raw, vector, catalog string) Query {
	expr := ParseQuery(raw)
	if expr == "" {
		return q
	}
	if catalog == "" {
		catalog = ddl.DefaultCatalog
	}
	cond := fmt.Sprintf("%s @@ to_tsquery('%s', @term)", vector, catalog)
	return q.Where(cond).Bind("term", expr)
}
