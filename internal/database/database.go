package database

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

var DB *sql.DB

// InitDB abre la base de datos y crea el esquema si no existe.
// Si DATABASE_URL está definida se usa Postgres; si no, un archivo SQLite
// local (el modo por defecto para desarrollo y tests).
func InitDB() error {
	dsn := os.Getenv("DATABASE_URL")

	var err error
	if dsn != "" {
		DB, err = sql.Open("postgres", dsn)
	} else {
		// Crear el directorio database si no existe
		if err := os.MkdirAll("database", 0755); err != nil {
			return err
		}
		DB, err = sql.Open("sqlite3", filepath.Join("database", "journal.db"))
	}
	if err != nil {
		return err
	}

	return EnsureSchema(DB)
}

// EnsureSchema crea la tabla clave/valor donde vive todo el estado de la
// aplicación. El esquema es el mismo en SQLite y Postgres.
func EnsureSchema(db *sql.DB) error {
	createStoreSQL := `
	CREATE TABLE IF NOT EXISTS journal_store (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`

	_, err := db.Exec(createStoreSQL)
	return err
}
