package ddl

import (
	"testing"
)

func articleColumn() Column {
	return Column{
		Table:   "article",
		Name:    "search_vector",
		Columns: []string{"name", "content"},
	}
}

func TestCreateIndexDefaultOptions(t *testing.T) {
	c := NewConstruct(articleColumn(), DefaultOptions())
	want := `CREATE INDEX "article_search_vector_index" ON "article" USING gin(search_vector)`
	if got := c.CreateIndex(); got != want {
		t.Errorf("index ddl mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestCreateIndexSchemaQualified(t *testing.T) {
	col := articleColumn()
	col.Schema = "content"
	c := NewConstruct(col, DefaultOptions())
	want := `CREATE INDEX "article_search_vector_index" ON content."article" USING gin(search_vector)`
	if got := c.CreateIndex(); got != want {
		t.Errorf("index ddl mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestCreateFunctionDefaultOptions(t *testing.T) {
	c := NewConstruct(articleColumn(), DefaultOptions())
	want := `CREATE FUNCTION "article_search_vector_update"() RETURNS TRIGGER AS $$ ` +
		`BEGIN NEW.search_vector = to_tsvector('pg_catalog.english', ` +
		`CONCAT(REPLACE(COALESCE(NEW.name, ''), '-', ' '), ' ', ` +
		`REPLACE(COALESCE(NEW.content, ''), '-', ' '), ' ')); ` +
		`RETURN NEW; END $$ LANGUAGE 'plpgsql';`
	if got := c.CreateFunction(); got != want {
		t.Errorf("function ddl mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestCreateTriggerWithHyphenRemoval(t *testing.T) {
	c := NewConstruct(articleColumn(), DefaultOptions())
	want := `CREATE TRIGGER "article_search_vector_trigger" BEFORE UPDATE OR INSERT ON "article" ` +
		`FOR EACH ROW EXECUTE PROCEDURE "article_search_vector_update"()`
	if got := c.CreateTrigger(); got != want {
		t.Errorf("trigger ddl mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestCreateTriggerWithoutHyphenRemoval(t *testing.T) {
	col := articleColumn()
	col.Options = &Options{RemoveHyphens: BoolPtr(false)}
	c := NewConstruct(col, DefaultOptions())
	want := `CREATE TRIGGER "article_search_vector_trigger" BEFORE UPDATE OR INSERT ON "article" ` +
		`FOR EACH ROW EXECUTE PROCEDURE tsvector_update_trigger(search_vector, 'pg_catalog.english', name, content)`
	if got := c.CreateTrigger(); got != want {
		t.Errorf("trigger ddl mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestDropFunction(t *testing.T) {
	c := NewConstruct(articleColumn(), DefaultOptions())
	want := `DROP FUNCTION IF EXISTS "article_search_vector_update"()`
	if got := c.DropFunction(); got != want {
		t.Errorf("drop ddl mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestNameTemplateOverride(t *testing.T) {
	col := articleColumn()
	col.Options = &Options{SearchIndexName: "ix_{table}_{column}"}
	c := NewConstruct(col, DefaultOptions())
	if got := c.IndexName(); got != "ix_article_search_vector" {
		t.Errorf("expected ix_article_search_vector, got %q", got)
	}
}

func TestTableNameOptionOverridesDescriptor(t *testing.T) {
	col := articleColumn()
	col.Options = &Options{TableName: "articles_v2"}
	c := NewConstruct(col, DefaultOptions())
	want := `CREATE INDEX "articles_v2_search_vector_index" ON "articles_v2" USING gin(search_vector)`
	if got := c.CreateIndex(); got != want {
		t.Errorf("index ddl mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestStatementsFullSet(t *testing.T) {
	stmts := Statements(articleColumn(), DefaultOptions())
	if len(stmts) != 4 {
		t.Fatalf("expected 4 statements, got %d", len(stmts))
	}
	// Execution order: index, function, trigger, then drop at drop time
	if stmts[0].Phase != AfterCreate || stmts[0].SQL[:12] != "CREATE INDEX" {
		t.Errorf("expected index first, got %v", stmts[0])
	}
	if stmts[1].Phase != AfterCreate || stmts[1].SQL[:15] != "CREATE FUNCTION" {
		t.Errorf("expected function second, got %v", stmts[1])
	}
	if stmts[2].Phase != AfterCreate || stmts[2].SQL[:14] != "CREATE TRIGGER" {
		t.Errorf("expected trigger third, got %v", stmts[2])
	}
	if stmts[3].Phase != AfterDrop || stmts[3].SQL[:13] != "DROP FUNCTION" {
		t.Errorf("expected drop function last, got %v", stmts[3])
	}
}

func TestStatementsNoSourceColumns(t *testing.T) {
	col := Column{Table: "article", Name: "search_vector"}
	stmts := Statements(col, DefaultOptions())
	if len(stmts) != 1 {
		t.Fatalf("expected index only, got %d statements", len(stmts))
	}
	if stmts[0].Phase != AfterCreate {
		t.Errorf("expected after-create, got %v", stmts[0].Phase)
	}
}

func TestStatementsNoHyphenRemoval(t *testing.T) {
	col := articleColumn()
	col.Options = &Options{RemoveHyphens: BoolPtr(false)}
	stmts := Statements(col, DefaultOptions())
	// No generated function, no drop: index + built-in trigger
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(stmts))
	}
	if stmts[1].SQL[:14] != "CREATE TRIGGER" {
		t.Errorf("expected trigger second, got %v", stmts[1])
	}
}
