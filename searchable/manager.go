package searchable

import "github.com/nonibytes/searchable/searchable/ddl"

// Registrar receives generated DDL bound to table lifecycle phases.
// Implementations decide when and how the statements run; registration
// order must be preserved (index before function before trigger).
type Registrar interface {
	Register(table string, phase ddl.Phase, statement string)
}

// Inspector yields the search vector columns of the entities it knows
// about, in declaration order
type Inspector interface {
	SearchColumns() []ddl.Column
}

// Manager generates and registers search DDL for vector columns. Its
// option defaults are fixed at construction; per-column overrides merge
// over them without mutating shared state. Each (table, column) pair is
// registered at most once, so repeated configuration passes cannot
// duplicate DDL. Not safe for concurrent use: the configuration phase
// is expected to be single-threaded, one manager per process lifetime.
type Manager struct {
	options   ddl.Options
	registrar Registrar
	processed map[ddl.Key]struct{}
}

// NewManager creates a manager registering DDL against registrar.
// Options set in opts override the global defaults for every column
// this manager processes; nil keeps the defaults.
func NewManager(registrar Registrar, opts *ddl.Options) *Manager {
	return &Manager{
		options:   ddl.Resolve(opts, nil, ddl.DefaultOptions()),
		registrar: registrar,
		processed: make(map[ddl.Key]struct{}),
	}
}

// Options returns the manager's resolved default options
func (m *Manager) Options() ddl.Options {
	return m.options
}

// Processed reports whether the column was already registered
func (m *Manager) Processed(col ddl.Column) bool {
	_, ok := m.processed[col.Key()]
	return ok
}

// RegisterColumn renders the column's DDL and hands it to the
// registrar. A column already seen for its (table, column) identity is
// a no-op regardless of descriptor contents.
func (m *Manager) RegisterColumn(col ddl.Column) {
	key := col.Key()
	if _, ok := m.processed[key]; ok {
		return
	}

	for _, stmt := range ddl.Statements(col, m.options) {
		m.registrar.Register(col.Table, stmt.Phase, stmt.SQL)
	}

	m.processed[key] = struct{}{}
}

// Scan registers every search vector column the inspector reports
func (m *Manager) Scan(inspector Inspector) {
	for _, col := range inspector.SearchColumns() {
		m.RegisterColumn(col)
	}
}
