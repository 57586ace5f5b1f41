// Package integration provides integration tests for sqlb using real PostgreSQL.
package integration

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/zoobzio/sqlb"
	pgrenderer "github.com/zoobzio/sqlb/postgres"
)

// PostgresContainer wraps a testcontainers PostgreSQL instance.
type PostgresContainer struct {
	container *postgres.PostgresContainer
	conn      *pgx.Conn
	connStr   string
}

// Exec executes a SQL statement.
func (pc *PostgresContainer) Exec(ctx context.Context, t *testing.T, sql string, args ...any) {
	t.Helper()
	_, err := pc.conn.Exec(ctx, sql, args...)
	if err != nil {
		t.Fatalf("Failed to execute SQL: %v\nSQL: %s", err, sql)
	}
}

// QueryRow executes a query and scans a single row.
func (pc *PostgresContainer) QueryRow(ctx context.Context, t *testing.T, sql string, args ...any) pgx.Row {
	t.Helper()
	return pc.conn.QueryRow(ctx, sql, args...)
}

// Query executes a query and returns rows.
func (pc *PostgresContainer) Query(ctx context.Context, t *testing.T, sql string, args ...any) pgx.Rows {
	t.Helper()
	rows, err := pc.conn.Query(ctx, sql, args...)
	if err != nil {
		t.Fatalf("Failed to execute query: %v\nSQL: %s", err, sql)
	}
	return rows
}

// setupPostgresSchema creates the test tables through the builder API so
// the DDL that reaches the server is the DDL sqlb renders.
func setupPostgresSchema(ctx context.Context, t *testing.T, pc *PostgresContainer) {
	t.Helper()
	r := pgrenderer.New()

	pc.Exec(ctx, t, mustSQL(t, r, sqlb.CreateTable("users").
		IfNotExists().
		Column(sqlb.Column("id").BigInteger().AutoIncrement().PrimaryKey()).
		Column(sqlb.Column("username").Varchar(255).NotNull()).
		Column(sqlb.Column("email").Varchar(255).NotNull()).
		Column(sqlb.Column("age").Integer()).
		Column(sqlb.Column("active").Boolean().Default(true))))

	pc.Exec(ctx, t, mustSQL(t, r, sqlb.CreateTable("posts").
		IfNotExists().
		Column(sqlb.Column("id").BigInteger().AutoIncrement().PrimaryKey()).
		Column(sqlb.Column("user_id").BigInteger()).
		Column(sqlb.Column("title").Varchar(255).NotNull()).
		Column(sqlb.Column("views").Integer().Default(0)).
		Column(sqlb.Column("published").Boolean().Default(false))))

	pc.Exec(ctx, t, mustSQL(t, r, sqlb.CreateTable("orders").
		IfNotExists().
		Column(sqlb.Column("id").BigInteger().AutoIncrement().PrimaryKey()).
		Column(sqlb.Column("user_id").BigInteger()).
		Column(sqlb.Column("total").Decimal(10, 2).NotNull()).
		Column(sqlb.Column("status").Varchar(50).Default("pending"))))
}

// seedPostgresData inserts test data.
func seedPostgresData(ctx context.Context, t *testing.T, pc *PostgresContainer) {
	t.Helper()

	pc.Exec(ctx, t, `
		INSERT INTO users (id, username, email, age, active) VALUES
		(1, 'alice', 'alice@example.com', 30, true),
		(2, 'bob', 'bob@example.com', 25, true),
		(3, 'charlie', 'charlie@example.com', 35, false),
		(4, 'diana', 'diana@example.com', 28, true)
	`)

	pc.Exec(ctx, t, `
		INSERT INTO posts (id, user_id, title, views, published) VALUES
		(1, 1, 'First Post', 100, true),
		(2, 1, 'Second Post', 50, true),
		(3, 2, 'Bob''s Post', 75, true),
		(4, 3, 'Draft Post', 0, false)
	`)

	pc.Exec(ctx, t, `
		INSERT INTO orders (id, user_id, total, status) VALUES
		(1, 1, 99.99, 'completed'),
		(2, 1, 149.99, 'completed'),
		(3, 2, 49.99, 'pending'),
		(4, 4, 199.99, 'completed')
	`)
}

// cleanupPostgresData removes all test data to ensure test isolation.
func cleanupPostgresData(ctx context.Context, t *testing.T, pc *PostgresContainer) {
	t.Helper()
	pc.Exec(ctx, t, `TRUNCATE TABLE orders, posts, users RESTART IDENTITY CASCADE`)
}

// TestPostgresIntegration_BasicSelect tests basic SELECT queries against real PostgreSQL.
func TestPostgresIntegration_BasicSelect(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pc := getPostgresContainer(t)
	setupPostgresSchema(ctx, t, pc)
	seedPostgresData(ctx, t, pc)
	t.Cleanup(func() { cleanupPostgresData(ctx, t, pc) })

	s := testSchema(t)

	result, err := sqlb.Select().From(s.T("users")).Render(pgrenderer.New())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	rows := pc.Query(ctx, t, result.SQL)
	defer rows.Close()

	count := 0
	for rows.Next() {
		count++
	}
	if count != 4 {
		t.Errorf("Expected 4 users, got %d", count)
	}
}

// TestPostgresIntegration_SelectWithWhere tests WHERE clauses with bound parameters.
func TestPostgresIntegration_SelectWithWhere(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pc := getPostgresContainer(t)
	setupPostgresSchema(ctx, t, pc)
	seedPostgresData(ctx, t, pc)
	t.Cleanup(func() { cleanupPostgresData(ctx, t, pc) })

	s := testSchema(t)

	result, err := sqlb.Select(s.Col("username")).
		From(s.T("users")).
		Where(s.Col("active").Eq(true)).
		Render(pgrenderer.New())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	rows := pc.Query(ctx, t, result.SQL, result.Args()...)
	defer rows.Close()

	var usernames []string
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		usernames = append(usernames, username)
	}

	if len(usernames) != 3 {
		t.Errorf("Expected 3 active users, got %d: %v", len(usernames), usernames)
	}
}

// TestPostgresIntegration_Join tests JOIN operations against real PostgreSQL.
func TestPostgresIntegration_Join(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pc := getPostgresContainer(t)
	setupPostgresSchema(ctx, t, pc)
	seedPostgresData(ctx, t, pc)
	t.Cleanup(func() { cleanupPostgresData(ctx, t, pc) })

	s := testSchema(t)

	result, err := sqlb.Select(sqlb.TC("u", "username"), sqlb.TC("p", "title")).
		FromAs(s.T("users"), "u").
		JoinAs(sqlb.InnerJoin, s.T("posts"), "p",
			sqlb.TC("u", "id").Eq(sqlb.TC("p", "user_id"))).
		Where(sqlb.TC("p", "published").Eq(true)).
		Render(pgrenderer.New())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	rows := pc.Query(ctx, t, result.SQL, result.Args()...)
	defer rows.Close()

	count := 0
	for rows.Next() {
		var username, title string
		if err := rows.Scan(&username, &title); err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		count++
	}

	if count != 3 {
		t.Errorf("Expected 3 published posts, got %d", count)
	}
}

// TestPostgresIntegration_Aggregates tests GROUP BY and HAVING against real PostgreSQL.
func TestPostgresIntegration_Aggregates(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pc := getPostgresContainer(t)
	setupPostgresSchema(ctx, t, pc)
	seedPostgresData(ctx, t, pc)
	t.Cleanup(func() { cleanupPostgresData(ctx, t, pc) })

	s := testSchema(t)

	result, err := sqlb.Select(s.Col("user_id")).
		ExprAs(sqlb.CountAll(), "post_count").
		From(s.T("posts")).
		GroupBy(s.Col("user_id")).
		Having(sqlb.CountAll().Gt(1)).
		Render(pgrenderer.New())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	rows := pc.Query(ctx, t, result.SQL, result.Args()...)
	defer rows.Close()

	count := 0
	for rows.Next() {
		var userID int64
		var postCount int
		if err := rows.Scan(&userID, &postCount); err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		if postCount <= 1 {
			t.Errorf("Expected post_count > 1, got %d for user %d", postCount, userID)
		}
		count++
	}

	// Only alice has more than 1 post
	if count != 1 {
		t.Errorf("Expected 1 user with >1 posts, got %d", count)
	}
}

// TestPostgresIntegration_OrderByLimit tests ORDER BY and LIMIT against real PostgreSQL.
func TestPostgresIntegration_OrderByLimit(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pc := getPostgresContainer(t)
	setupPostgresSchema(ctx, t, pc)
	seedPostgresData(ctx, t, pc)
	t.Cleanup(func() { cleanupPostgresData(ctx, t, pc) })

	s := testSchema(t)

	result, err := sqlb.Select(s.Col("username"), s.Col("age")).
		From(s.T("users")).
		OrderBy(s.Col("age"), sqlb.DESC).
		Limit(2).
		Render(pgrenderer.New())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	rows := pc.Query(ctx, t, result.SQL)
	defer rows.Close()

	var ages []int
	for rows.Next() {
		var username string
		var age int
		if err := rows.Scan(&username, &age); err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		ages = append(ages, age)
	}

	if len(ages) != 2 {
		t.Fatalf("Expected 2 users, got %d", len(ages))
	}
	if ages[0] != 35 || ages[1] != 30 {
		t.Errorf("Expected ages [35, 30], got %v", ages)
	}
}

// TestPostgresIntegration_InsertReturning tests INSERT with RETURNING against real PostgreSQL.
func TestPostgresIntegration_InsertReturning(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pc := getPostgresContainer(t)
	setupPostgresSchema(ctx, t, pc)
	t.Cleanup(func() { cleanupPostgresData(ctx, t, pc) })

	s := testSchema(t)

	result, err := sqlb.InsertInto(s.T("users")).
		Columns(s.Col("username"), s.Col("email"), s.Col("age")).
		Values("newuser", "newuser@example.com", 42).
		Returning(s.Col("id")).
		Render(pgrenderer.New())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	var id int64
	err = pc.conn.QueryRow(ctx, result.SQL, result.Args()...).Scan(&id)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}
}

// TestPostgresIntegration_Update tests UPDATE with RETURNING against real PostgreSQL.
func TestPostgresIntegration_Update(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pc := getPostgresContainer(t)
	setupPostgresSchema(ctx, t, pc)
	seedPostgresData(ctx, t, pc)
	t.Cleanup(func() { cleanupPostgresData(ctx, t, pc) })

	s := testSchema(t)

	result, err := sqlb.Update(s.T("users")).
		Set(s.Col("age"), 99).
		Where(s.Col("username").Eq("alice")).
		Returning(s.Col("age")).
		Render(pgrenderer.New())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	var age int
	err = pc.conn.QueryRow(ctx, result.SQL, result.Args()...).Scan(&age)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if age != 99 {
		t.Errorf("Expected age 99, got %d", age)
	}
}

// TestPostgresIntegration_Delete tests DELETE against real PostgreSQL.
func TestPostgresIntegration_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pc := getPostgresContainer(t)
	setupPostgresSchema(ctx, t, pc)
	seedPostgresData(ctx, t, pc)
	t.Cleanup(func() { cleanupPostgresData(ctx, t, pc) })

	s := testSchema(t)

	result, err := sqlb.DeleteFrom(s.T("users")).
		Where(s.Col("active").Eq(false)).
		Render(pgrenderer.New())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	pc.Exec(ctx, t, result.SQL, result.Args()...)

	var remaining int
	row := pc.QueryRow(ctx, t, "SELECT COUNT(*) FROM users")
	if err := row.Scan(&remaining); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if remaining != 3 {
		t.Errorf("Expected 3 users after delete, got %d", remaining)
	}
}

// TestPostgresIntegration_SubqueryIn tests IN (SELECT ...) against real PostgreSQL.
func TestPostgresIntegration_SubqueryIn(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pc := getPostgresContainer(t)
	setupPostgresSchema(ctx, t, pc)
	seedPostgresData(ctx, t, pc)
	t.Cleanup(func() { cleanupPostgresData(ctx, t, pc) })

	s := testSchema(t)

	sub := sqlb.Select(s.Col("user_id")).
		From(s.T("orders")).
		Where(s.Col("status").Eq("completed"))

	result, err := sqlb.Select(s.Col("username")).
		From(s.T("users")).
		Where(s.Col("id").InSelect(sub)).
		OrderBy(s.Col("username"), sqlb.ASC).
		Render(pgrenderer.New())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	rows := pc.Query(ctx, t, result.SQL, result.Args()...)
	defer rows.Close()

	var usernames []string
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		usernames = append(usernames, username)
	}

	if len(usernames) != 2 || usernames[0] != "alice" || usernames[1] != "diana" {
		t.Errorf("Expected [alice diana], got %v", usernames)
	}
}

// TestPostgresIntegration_CaseExpression tests CASE WHEN against real PostgreSQL.
func TestPostgresIntegration_CaseExpression(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pc := getPostgresContainer(t)
	setupPostgresSchema(ctx, t, pc)
	seedPostgresData(ctx, t, pc)
	t.Cleanup(func() { cleanupPostgresData(ctx, t, pc) })

	s := testSchema(t)

	result, err := sqlb.Select(s.Col("username")).
		ExprAs(sqlb.Case().
			When(s.Col("age").Gte(30), "senior").
			Else("junior").
			End(), "bracket").
		From(s.T("users")).
		Render(pgrenderer.New())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	rows := pc.Query(ctx, t, result.SQL, result.Args()...)
	defer rows.Close()

	seniors := 0
	for rows.Next() {
		var username, bracket string
		if err := rows.Scan(&username, &bracket); err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		if bracket == "senior" {
			seniors++
		}
	}

	if seniors != 2 {
		t.Errorf("Expected 2 seniors, got %d", seniors)
	}
}

// TestPostgresIntegration_NullsOrdering tests NULLS LAST against real PostgreSQL.
func TestPostgresIntegration_NullsOrdering(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pc := getPostgresContainer(t)
	setupPostgresSchema(ctx, t, pc)
	seedPostgresData(ctx, t, pc)
	t.Cleanup(func() { cleanupPostgresData(ctx, t, pc) })

	s := testSchema(t)

	insert, err := sqlb.InsertInto(s.T("users")).
		Columns(s.Col("id"), s.Col("username"), s.Col("email"), s.Col("age")).
		Values(5, "erin", "erin@example.com", sqlb.Null()).
		Render(pgrenderer.New())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	pc.Exec(ctx, t, insert.SQL, insert.Args()...)

	result, err := sqlb.Select(s.Col("username")).
		From(s.T("users")).
		OrderByNulls(s.Col("age"), sqlb.DESC, sqlb.NullsLast).
		Render(pgrenderer.New())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	rows := pc.Query(ctx, t, result.SQL)
	defer rows.Close()

	var usernames []string
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		usernames = append(usernames, username)
	}

	if len(usernames) != 5 {
		t.Fatalf("Expected 5 users, got %d", len(usernames))
	}
	if usernames[len(usernames)-1] != "erin" {
		t.Errorf("Expected erin (NULL age) last, got %v", usernames)
	}
}

// TestPostgresIntegration_SchemaDDL walks scratch tables through the full
// DDL surface: create, index, foreign key, alter, and drop.
func TestPostgresIntegration_SchemaDDL(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pc := getPostgresContainer(t)
	r := pgrenderer.New()

	pc.Exec(ctx, t, mustSQL(t, r, sqlb.DropTable("post_tags", "tags").IfExists()))

	pc.Exec(ctx, t, mustSQL(t, r, sqlb.CreateTable("tags").
		Column(sqlb.Column("id").Integer().AutoIncrement().PrimaryKey()).
		Column(sqlb.Column("name").Varchar(64).NotNull().Unique())))

	pc.Exec(ctx, t, mustSQL(t, r, sqlb.CreateTable("post_tags").
		Column(sqlb.Column("post_id").BigInteger().NotNull()).
		Column(sqlb.Column("tag_id").Integer().NotNull()).
		PrimaryKey("post_id", "tag_id")))

	pc.Exec(ctx, t, mustSQL(t, r, sqlb.CreateIndex("idx_tags_name").
		On("tags").
		Columns("name")))

	pc.Exec(ctx, t, mustSQL(t, r, sqlb.CreateForeignKey("fk_post_tags_tag").
		From("post_tags", "tag_id").
		To("tags", "id").
		OnDelete(sqlb.Cascade)))

	pc.Exec(ctx, t, mustSQL(t, r, sqlb.AlterTable("tags").
		AddColumn(sqlb.Column("slug").Varchar(64))))

	pc.Exec(ctx, t, mustSQL(t, r, sqlb.AlterTable("tags").
		ModifyColumn(sqlb.Column("slug").Varchar(128))))

	pc.Exec(ctx, t, mustSQL(t, r, sqlb.AlterTable("tags").
		RenameColumn("slug", "handle")))

	// The reshaped table must still accept data
	insert, err := sqlb.InsertInto("tags").
		Columns("name", "handle").
		Values("golang", "golang").
		Returning("id").
		Render(r)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	var id int
	if err := pc.conn.QueryRow(ctx, insert.SQL, insert.Args()...).Scan(&id); err != nil {
		t.Fatalf("Insert into reshaped table failed: %v", err)
	}
	if id != 1 {
		t.Errorf("Expected id 1, got %d", id)
	}

	pc.Exec(ctx, t, mustSQL(t, r, sqlb.DropForeignKey("fk_post_tags_tag").On("post_tags")))
	pc.Exec(ctx, t, mustSQL(t, r, sqlb.DropIndex("idx_tags_name")))
	pc.Exec(ctx, t, mustSQL(t, r, sqlb.DropTable("post_tags", "tags")))
}
