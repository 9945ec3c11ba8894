package postgres

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/nonibytes/searchable/searchable"
)

// SearchQuery is a minimal filterable SELECT implementing
// searchable.Query. Conditions accumulate into the WHERE clause; named
// parameters are carried as pgx named args.
type SearchQuery struct {
	base       string
	conditions []string
	args       pgx.NamedArgs
}

// NewSearchQuery starts a query from a base SELECT without a WHERE
// clause, e.g. `SELECT id, name FROM article`
func NewSearchQuery(base string) *SearchQuery {
	return &SearchQuery{
		base: base,
		args: pgx.NamedArgs{},
	}
}

// Where adds a condition, ANDed with any previous ones
func (q *SearchQuery) Where(condition string) searchable.Query {
	q.conditions = append(q.conditions, condition)
	return q
}

// Bind attaches a named parameter value referenced as @name in a
// condition
func (q *SearchQuery) Bind(name string, value any) searchable.Query {
	q.args[name] = value
	return q
}

// SQL renders the full statement
func (q *SearchQuery) SQL() string {
	if len(q.conditions) == 0 {
		return q.base
	}
	return q.base + " WHERE " + strings.Join(q.conditions, " AND ")
}

// Args returns the bound named parameters
func (q *SearchQuery) Args() pgx.NamedArgs {
	return q.args
}

// Query runs the statement on a pgx connection
func (q *SearchQuery) Query(ctx context.Context, conn *pgx.Conn) (pgx.Rows, error) {
	rows, err := conn.Query(ctx, q.SQL(), q.Args())
	if err != nil {
		return nil, searchable.Wrap(searchable.ErrSQL, "search query", err)
	}
	return rows, nil
}

var _ searchable.Query = (*SearchQuery)(nil)
