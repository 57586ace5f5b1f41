package mssql

import (
	"errors"
	"testing"

	"github.com/zoobzio/sqlb"
)

func TestNew(t *testing.T) {
	r := New()
	if r == nil {
		t.Fatal("New() returned nil")
	}
	if r.Name() != "SQLServer" {
		t.Errorf("Name() = %q, want %q", r.Name(), "SQLServer")
	}
}

func TestRender_SimpleSelect(t *testing.T) {
	r := New()
	result, err := sqlb.Select("id", "name").From("users").Render(r)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	// T-SQL uses square brackets for quoting
	expected := "SELECT [id], [name] FROM [users]"
	if result.SQL != expected {
		t.Errorf("SQL = %q, want %q", result.SQL, expected)
	}
}

func TestRender_NamedPlaceholders(t *testing.T) {
	r := New()
	result, err := sqlb.Select("id").
		From("users").
		Where(sqlb.Col("age").Gte(18).And(sqlb.Col("name").Like("a%"))).
		Render(r)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	expected := "SELECT [id] FROM [users] WHERE ([age] >= @p1) AND ([name] LIKE @p2)"
	if result.SQL != expected {
		t.Errorf("SQL = %q, want %q", result.SQL, expected)
	}
}

func TestRender_OffsetFetch(t *testing.T) {
	r := New()
	result, err := sqlb.Select("id").
		From("users").
		OrderBy("id", sqlb.ASC).
		Limit(10).
		Offset(20).
		Render(r)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	// T-SQL pagination is OFFSET ... FETCH, not LIMIT
	expected := "SELECT [id] FROM [users] ORDER BY [id] ASC OFFSET 20 ROWS FETCH NEXT 10 ROWS ONLY"
	if result.SQL != expected {
		t.Errorf("SQL = %q, want %q", result.SQL, expected)
	}
}

func TestRender_LimitWithoutOffset(t *testing.T) {
	r := New()
	result, err := sqlb.Select("id").
		From("users").
		OrderBy("id", sqlb.ASC).
		Limit(10).
		Render(r)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	expected := "SELECT [id] FROM [users] ORDER BY [id] ASC OFFSET 0 ROWS FETCH NEXT 10 ROWS ONLY"
	if result.SQL != expected {
		t.Errorf("SQL = %q, want %q", result.SQL, expected)
	}
}

func TestRender_PaginationRequiresOrderBy(t *testing.T) {
	r := New()
	_, err := sqlb.Select("id").From("users").Limit(10).Render(r)
	if err == nil {
		t.Fatal("expected error for LIMIT without ORDER BY")
	}
	var ufErr sqlb.UnsupportedFeatureError
	if !errors.As(err, &ufErr) {
		t.Fatalf("error type = %T, want UnsupportedFeatureError", err)
	}
	if ufErr.Feature != "LIMIT/OFFSET without ORDER BY" {
		t.Errorf("Feature = %q, want %q", ufErr.Feature, "LIMIT/OFFSET without ORDER BY")
	}
}

func TestRender_ReturningUnsupported(t *testing.T) {
	r := New()
	_, err := sqlb.InsertInto("users").
		Columns("name").
		Values("x").
		Returning("id").
		Render(r)
	if err == nil {
		t.Fatal("expected error for RETURNING")
	}
	var ufErr sqlb.UnsupportedFeatureError
	if !errors.As(err, &ufErr) {
		t.Fatalf("error type = %T, want UnsupportedFeatureError", err)
	}
	if ufErr.Feature != "RETURNING" {
		t.Errorf("Feature = %q, want %q", ufErr.Feature, "RETURNING")
	}
	if ufErr.Hint == "" {
		t.Error("expected a hint suggesting an alternative")
	}
}

func TestRender_CreateTable(t *testing.T) {
	r := New()
	result, err := sqlb.CreateTable("users").
		Column(sqlb.Column("id").Integer().AutoIncrement().PrimaryKey()).
		Column(sqlb.Column("name").Varchar(64).NotNull()).
		Column(sqlb.Column("active").Boolean()).
		Column(sqlb.Column("ref").UUID()).
		Render(r)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	expected := "CREATE TABLE [users] ( [id] int IDENTITY(1,1) PRIMARY KEY, [name] nvarchar(64) NOT NULL, [active] bit, [ref] uniqueidentifier )"
	if result.SQL != expected {
		t.Errorf("SQL = %q, want %q", result.SQL, expected)
	}
}

func TestRender_IfNotExistsUnsupported(t *testing.T) {
	r := New()
	_, err := sqlb.CreateTable("users").
		IfNotExists().
		Column(sqlb.Column("id").Integer()).
		Render(r)
	if err == nil {
		t.Fatal("expected error for IF NOT EXISTS")
	}
	var ufErr sqlb.UnsupportedFeatureError
	if !errors.As(err, &ufErr) {
		t.Fatalf("error type = %T, want UnsupportedFeatureError", err)
	}
}

func TestRender_AlterColumn(t *testing.T) {
	r := New()
	result, err := sqlb.AlterTable("users").
		ModifyColumn(sqlb.Column("name").Varchar(128).NotNull()).
		Render(r)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	expected := "ALTER TABLE [users] ALTER COLUMN [name] nvarchar(128) NOT NULL"
	if result.SQL != expected {
		t.Errorf("SQL = %q, want %q", result.SQL, expected)
	}
}

func TestRender_AddColumnHasNoKeyword(t *testing.T) {
	r := New()
	result, err := sqlb.AlterTable("users").
		AddColumn(sqlb.Column("bio").Text()).
		Render(r)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	// T-SQL is ADD, not ADD COLUMN
	expected := "ALTER TABLE [users] ADD [bio] nvarchar(max)"
	if result.SQL != expected {
		t.Errorf("SQL = %q, want %q", result.SQL, expected)
	}
}

func TestRenderInline_Literals(t *testing.T) {
	r := New()
	sql, err := sqlb.InsertInto("users").
		Columns("name", "active", "data").
		Values("bob", true, []byte{0xff}).
		RenderInline(r)
	if err != nil {
		t.Fatalf("RenderInline() error = %v", err)
	}

	// bit columns take 1/0, bytes render as a raw hex literal
	expected := "INSERT INTO [users] ([name], [active], [data]) VALUES ('bob', 1, 0xff)"
	if sql != expected {
		t.Errorf("SQL = %q, want %q", sql, expected)
	}
}

func TestRender_Concat(t *testing.T) {
	r := New()
	result, err := sqlb.Select().
		Expr(sqlb.Col("first").Concat(sqlb.Col("last"))).
		From("users").
		Render(r)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	expected := "SELECT CONCAT([first], [last]) FROM [users]"
	if result.SQL != expected {
		t.Errorf("SQL = %q, want %q", result.SQL, expected)
	}
}

func TestRender_IfNullBecomesIsNull(t *testing.T) {
	r := New()
	result, err := sqlb.Select().
		Expr(sqlb.IfNull(sqlb.Col("nickname"), "anon")).
		From("users").
		Render(r)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	expected := "SELECT ISNULL([nickname], @p1) FROM [users]"
	if result.SQL != expected {
		t.Errorf("SQL = %q, want %q", result.SQL, expected)
	}
}
