package testutil

import (
	"database/sql"
	"testing"

	"kintacos/internal/infrastructure/mysql"
)

// SetupTestDB opens the MySQL test database and creates the orders table
// from the same DDL the service uses. Expects a local MySQL with a database
// named 'kintacos_test'; tests are skipped when it is not reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/kintacos_test"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	if err := mysql.EnsureSchema(db); err != nil {
		t.Fatalf("failed to create orders table: %v", err)
	}

	return db
}

// CleanupTestDB empties the orders table and closes the connection.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	if _, err := db.Exec("DELETE FROM orders"); err != nil {
		t.Logf("failed to clean orders table: %v", err)
	}

	db.Close()
}
