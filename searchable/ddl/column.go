package ddl

// Column describes one generated search vector column. Schema is
// optional; Columns lists the source columns feeding the vector, in
// order. A column with no source columns gets an index only: the
// application is expected to populate the vector itself. Options, when
// set, override the manager defaults for this column.
type Column struct {
	Schema  string
	Table   string
	Name    string
	Columns []string
	Options *Options
}

// Key identifies a column for dedup purposes
type Key struct {
	Table  string
	Column string
}

// Key returns the (table, column) identity of the descriptor
func (c Column) Key() Key {
	return Key{Table: c.Table, Column: c.Name}
}
