package ddl

// Options configures DDL generation for search vector columns. The name
// fields are templates expanded against {table} and {column}. Zero
// values mean "unset" and fall through during resolution; RemoveHyphens
// is a pointer so false can be distinguished from unset.
type Options struct {
	TableName                 string
	RemoveHyphens             *bool
	SearchIndexName           string
	SearchTriggerName         string
	SearchTriggerFunctionName string
	Catalog                   string
}

// DefaultCatalog is the text search configuration used when no catalog
// option is supplied.
const DefaultCatalog = "pg_catalog.english"

// DefaultOptions returns the global default option set
func DefaultOptions() Options {
	return Options{
		RemoveHyphens:             BoolPtr(true),
		SearchIndexName:           "{table}_{column}_index",
		SearchTriggerName:         "{table}_{column}_trigger",
		SearchTriggerFunctionName: "{table}_{column}_update",
		Catalog:                   DefaultCatalog,
	}
}

// BoolPtr returns a pointer to b, for setting RemoveHyphens
func BoolPtr(b bool) *bool {
	return &b
}

// Resolve merges option sets by priority: values set in explicit win,
// then values the column declares, then the defaults. The result is a
// new value; no input is mutated. A defaults set missing a field yields
// that field unset in the output, it is the caller's contract to pass a
// complete defaults set.
func Resolve(explicit, column *Options, defaults Options) Options {
	out := defaults
	apply(&out, column)
	apply(&out, explicit)
	return out
}

func apply(dst *Options, src *Options) {
	if src == nil {
		return
	}
	if src.TableName != "" {
		dst.TableName = src.TableName
	}
	if src.RemoveHyphens != nil {
		dst.RemoveHyphens = src.RemoveHyphens
	}
	if src.SearchIndexName != "" {
		dst.SearchIndexName = src.SearchIndexName
	}
	if src.SearchTriggerName != "" {
		dst.SearchTriggerName = src.SearchTriggerName
	}
	if src.SearchTriggerFunctionName != "" {
		dst.SearchTriggerFunctionName = src.SearchTriggerFunctionName
	}
	if src.Catalog != "" {
		dst.Catalog = src.Catalog
	}
}

// removeHyphens reads the resolved flag, defaulting to true when unset
func (o Options) removeHyphens() bool {
	return o.RemoveHyphens == nil || *o.RemoveHyphens
}
