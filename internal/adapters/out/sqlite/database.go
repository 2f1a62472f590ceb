// Package sqlite provides the GORM/SQLite implementation of the persistence
// ports: schema setup, the legacy-layout migration and the Unit of Work with
// its per-aggregate repositories.
package sqlite

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// createTableStatements is the current schema. The orders table is the one
// the migration in migrate.go rebuilds legacy layouts into: target_weight is
// nullable because category-mode orders have none, and exactly one of the
// two order modes is populated per row.
var createTableStatements = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		created_at TEXT DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		price_per_kg REAL NOT NULL,
		status TEXT NOT NULL DEFAULT 'active',
		created_at TEXT DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS turkeys (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id INTEGER NOT NULL REFERENCES sessions(id),
		actual_weight REAL NOT NULL,
		created_at TEXT DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id INTEGER NOT NULL REFERENCES sessions(id),
		customer_id INTEGER NOT NULL REFERENCES customers(id),
		target_weight REAL,
		portion_type TEXT NOT NULL DEFAULT 'whole',
		size_preference TEXT DEFAULT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		turkey_id INTEGER REFERENCES turkeys(id),
		created_at TEXT DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}

// OpenDatabase opens (or creates) the SQLite database at the given path,
// ensures the schema exists and runs the legacy-layout migration.
//
// Pragmas travel in the DSN rather than as Exec statements so every
// connection the pool hands out has foreign keys enforced and WAL active,
// not just the one that happened to run the setup.
func OpenDatabase(path string) (*gorm.DB, error) {
	dsn := path + "?_foreign_keys=1&_journal_mode=WAL"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	for _, stmt := range createTableStatements {
		if err = db.Exec(stmt).Error; err != nil {
			return nil, err
		}
	}

	if err = Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}
