package sqlite

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
	if r.Name() != "SQLite" {
		t.Errorf("Name() = %q, want %q", r.Name(), "SQLite")
	}
}

func TestRender_SimpleSelect(t *testing.T) {
	r := New()
	result, err := sqlb.Select("id", "name").From("users").Render(r)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	// SQLite quotes with double quotes, same as standard SQL
	expected := `SELECT "id", "name" FROM "users"`
	if result.SQL != expected {
		t.Errorf("SQL = %q, want %q", result.SQL, expected)
	}
}

func TestRender_QuestionPlaceholders(t *testing.T) {
	r := New()
	result, err := sqlb.Select("id").
		From("users").
		Where(sqlb.Col("age").Between(18, 65)).
		Render(r)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	expected := `SELECT "id" FROM "users" WHERE "age" BETWEEN ? AND ?`
	if result.SQL != expected {
		t.Errorf("SQL = %q, want %q", result.SQL, expected)
	}
	if len(result.Params) != 2 {
		t.Fatalf("len(Params) = %d, want 2", len(result.Params))
	}
}

func TestRender_InsertWithReturning(t *testing.T) {
	r := New()
	result, err := sqlb.InsertInto("users").
		Columns("name").
		Values("alice").
		Returning("id").
		Render(r)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	// SQLite 3.35+ supports RETURNING
	expected := `INSERT INTO "users" ("name") VALUES (?) RETURNING "id"`
	if result.SQL != expected {
		t.Errorf("SQL = %q, want %q", result.SQL, expected)
	}
}

func TestRender_AutoIncrementAfterPrimaryKey(t *testing.T) {
	r := New()
	result, err := sqlb.CreateTable("users").
		Column(sqlb.Column("id").Integer().AutoIncrement().PrimaryKey()).
		Column(sqlb.Column("name").Text()).
		Render(r)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	// AUTOINCREMENT must follow PRIMARY KEY
	expected := `CREATE TABLE "users" ( "id" integer PRIMARY KEY AUTOINCREMENT, "name" text )`
	if result.SQL != expected {
		t.Errorf("SQL = %q, want %q", result.SQL, expected)
	}
}

func TestRender_IntegerWidthsCollapse(t *testing.T) {
	r := New()
	result, err := sqlb.CreateTable("t").
		Column(sqlb.Column("a").TinyInteger()).
		Column(sqlb.Column("b").BigInteger()).
		Render(r)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	expected := `CREATE TABLE "t" ( "a" integer, "b" integer )`
	if result.SQL != expected {
		t.Errorf("SQL = %q, want %q", result.SQL, expected)
	}
}

func TestRender_CharLengthBecomesLength(t *testing.T) {
	r := New()
	result, err := sqlb.Select().
		Expr(sqlb.CharLength(sqlb.Col("name"))).
		From("users").
		Render(r)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	expected := `SELECT LENGTH("name") FROM "users"`
	if result.SQL != expected {
		t.Errorf("SQL = %q, want %q", result.SQL, expected)
	}
}

func TestRender_UnsupportedFeatures(t *testing.T) {
	r := New()
	tests := []struct {
		name    string
		stmt    sqlb.Statement
		feature string
	}{
		{
			"truncate",
			sqlb.TruncateTable("logs").Statement(),
			"TRUNCATE TABLE",
		},
		{
			"modify column",
			sqlb.AlterTable("users").ModifyColumn(sqlb.Column("name").Text()).Statement(),
			"MODIFY COLUMN",
		},
		{
			"add foreign key",
			sqlb.CreateForeignKey("fk").From("a", "b_id").To("b", "id").Statement(),
			"ADD FOREIGN KEY",
		},
		{
			"offset without limit",
			sqlb.Select("id").From("users").Offset(5).Statement(),
			"OFFSET without LIMIT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Render(tt.stmt)
			if err == nil {
				t.Fatal("expected error")
			}
			var ufErr sqlb.UnsupportedFeatureError
			if !errors.As(err, &ufErr) {
				t.Fatalf("error type = %T, want UnsupportedFeatureError", err)
			}
			if ufErr.Feature != tt.feature {
				t.Errorf("Feature = %q, want %q", ufErr.Feature, tt.feature)
			}
		})
	}
}

func TestRender_DropAndRenameColumn(t *testing.T) {
	r := New()

	result, err := sqlb.AlterTable("users").DropColumn("legacy").Render(r)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	expected := `ALTER TABLE "users" DROP COLUMN "legacy"`
	if result.SQL != expected {
		t.Errorf("SQL = %q, want %q", result.SQL, expected)
	}

	result, err = sqlb.AlterTable("users").RenameColumn("name", "full_name").Render(r)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	expected = `ALTER TABLE "users" RENAME COLUMN "name" TO "full_name"`
	if result.SQL != expected {
		t.Errorf("SQL = %q, want %q", result.SQL, expected)
	}
}

func TestRenderInline_HexBytes(t *testing.T) {
	r := New()
	sql, err := sqlb.InsertInto("files").
		Columns("data").
		Values([]byte{0x01, 0x02}).
		RenderInline(r)
	if err != nil {
		t.Fatalf("RenderInline() error = %v", err)
	}

	expected := `INSERT INTO "files" ("data") VALUES (x'0102')`
	if sql != expected {
		t.Errorf("SQL = %q, want %q", sql, expected)
	}
}
