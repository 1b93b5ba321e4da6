package mysql

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"kintacos/internal/config"
)

func NewConnection(cfg config.DatabaseConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name,
	)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

// Schema is the orders table DDL. createdAt stays a string column so the
// stored value round-trips exactly as the document contract hands it over.
const Schema = `
CREATE TABLE IF NOT EXISTS orders (
	id CHAR(36) NOT NULL PRIMARY KEY,
	firstName VARCHAR(100) NOT NULL,
	lastName VARCHAR(100) NOT NULL,
	phone VARCHAR(30) NOT NULL,
	whatsapp VARCHAR(30) NOT NULL,
	orderDescription TEXT NOT NULL,
	deliveryOption VARCHAR(20) NOT NULL,
	address VARCHAR(255) NOT NULL DEFAULT '',
	city VARCHAR(100) NOT NULL DEFAULT '',
	commune VARCHAR(100) NOT NULL DEFAULT '',
	additionalInfo TEXT,
	status VARCHAR(50) NOT NULL DEFAULT 'pending',
	createdAt VARCHAR(35) NOT NULL,
	INDEX idx_status (status),
	INDEX idx_createdAt (createdAt)
)`

// EnsureSchema creates the orders table when it does not exist yet.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("creating orders table: %w", err)
	}
	return nil
}
