package ddl

import (
	"fmt"
	"strings"
)

// Phase tags a statement with the table lifecycle point it runs at
type Phase string

const (
	AfterCreate Phase = "after-create"
	AfterDrop   Phase = "after-drop"
)

// Statement is one rendered DDL statement bound to a lifecycle phase
type Statement struct {
	Phase Phase
	SQL   string
}

// Construct renders DDL for one search vector column with its resolved
// options. Identifier names come from the option templates; table and
// column identifiers are double-quoted, PostgreSQL being the only
// supported dialect.
type Construct struct {
	Column  Column
	Options Options
}

// NewConstruct resolves the column's option overrides against defaults
// and returns a ready construct
func NewConstruct(col Column, defaults Options) Construct {
	return Construct{
		Column:  col,
		Options: Resolve(nil, col.Options, defaults),
	}
}

func quoteIdentifier(identifier string) string {
	// PostgreSQL only; identifiers originate from trusted schema
	// metadata, not user input.
	return `"` + identifier + `"`
}

// tableName is the unqualified base table name used for identifier
// templates. The tablename option overrides the descriptor's table.
func (c Construct) tableName() string {
	if c.Options.TableName != "" {
		return c.Options.TableName
	}
	return c.Column.Table
}

// TableRef renders the table reference: schema."table" when schema
// qualified, "table" otherwise
func (c Construct) TableRef() string {
	if c.Column.Schema != "" {
		return c.Column.Schema + "." + quoteIdentifier(c.tableName())
	}
	return quoteIdentifier(c.tableName())
}

func (c Construct) expand(template string) string {
	return strings.NewReplacer(
		"{table}", c.tableName(),
		"{column}", c.Column.Name,
	).Replace(template)
}

// IndexName returns the expanded search index name
func (c Construct) IndexName() string {
	return c.expand(c.Options.SearchIndexName)
}

// TriggerName returns the expanded search trigger name
func (c Construct) TriggerName() string {
	return c.expand(c.Options.SearchTriggerName)
}

// FunctionName returns the expanded trigger function name
func (c Construct) FunctionName() string {
	return c.expand(c.Options.SearchTriggerFunctionName)
}

// CreateIndex renders the GIN index over the vector column
func (c Construct) CreateIndex() string {
	return fmt.Sprintf(
		"CREATE INDEX %s ON %s USING gin(%s)",
		quoteIdentifier(c.IndexName()),
		c.TableRef(),
		c.Column.Name,
	)
}

// vectorArguments builds the CONCAT(...) expression feeding to_tsvector
// in the generated trigger function. Each source column has hyphens
// replaced by spaces and NULLs coalesced to '', mirroring what query
// normalization does to compound words on the read side.
func (c Construct) vectorArguments() string {
	parts := make([]string, 0, len(c.Column.Columns))
	for _, name := range c.Column.Columns {
		parts = append(parts, fmt.Sprintf("REPLACE(COALESCE(NEW.%s, ''), '-', ' '), ' '", name))
	}
	return fmt.Sprintf("CONCAT(%s)", strings.Join(parts, ", "))
}

// CreateFunction renders the trigger function recomputing the vector
// from the source columns. Only meaningful when the column declares
// source columns and remove_hyphens is enabled.
func (c Construct) CreateFunction() string {
	return fmt.Sprintf(
		"CREATE FUNCTION %s() RETURNS TRIGGER AS $$ BEGIN NEW.%s = to_tsvector('%s', %s); RETURN NEW; END $$ LANGUAGE 'plpgsql';",
		quoteIdentifier(c.FunctionName()),
		c.Column.Name,
		c.Options.Catalog,
		c.vectorArguments(),
	)
}

// procedureCall is the EXECUTE PROCEDURE target of the trigger: the
// generated function when hyphen removal applies, otherwise the engine
// built-in tsvector_update_trigger with the vector column, catalog and
// source columns as arguments.
func (c Construct) procedureCall() string {
	if c.Options.removeHyphens() && len(c.Column.Columns) > 0 {
		return quoteIdentifier(c.FunctionName()) + "()"
	}
	args := append(
		[]string{c.Column.Name, fmt.Sprintf("'%s'", c.Options.Catalog)},
		c.Column.Columns...,
	)
	return fmt.Sprintf("tsvector_update_trigger(%s)", strings.Join(args, ", "))
}

// CreateTrigger renders the row trigger keeping the vector current
func (c Construct) CreateTrigger() string {
	return fmt.Sprintf(
		"CREATE TRIGGER %s BEFORE UPDATE OR INSERT ON %s FOR EACH ROW EXECUTE PROCEDURE %s",
		quoteIdentifier(c.TriggerName()),
		c.TableRef(),
		c.procedureCall(),
	)
}

// DropFunction renders the cleanup for the generated trigger function
func (c Construct) DropFunction() string {
	return fmt.Sprintf("DROP FUNCTION IF EXISTS %s()", quoteIdentifier(c.FunctionName()))
}

// Statements renders every statement the column needs, in execution
// order: index, then trigger function, then trigger on after-create;
// drop-function on after-drop. A column with no source columns yields
// the index alone.
func Statements(col Column, defaults Options) []Statement {
	c := NewConstruct(col, defaults)

	stmts := []Statement{{Phase: AfterCreate, SQL: c.CreateIndex()}}
	if len(col.Columns) == 0 {
		return stmts
	}

	if c.Options.removeHyphens() {
		stmts = append(stmts, Statement{Phase: AfterCreate, SQL: c.CreateFunction()})
	}
	stmts = append(stmts, Statement{Phase: AfterCreate, SQL: c.CreateTrigger()})
	if c.Options.removeHyphens() {
		stmts = append(stmts, Statement{Phase: AfterDrop, SQL: c.DropFunction()})
	}
	return stmts
}
