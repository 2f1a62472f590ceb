package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// schemaVersion is recorded in PRAGMA user_version once the layout is current.
const schemaVersion = 2

// relaxedOrdersTable is the current orders layout the rebuild produces.
// It must stay in sync with the orders statement in createTableStatements.
const relaxedOrdersTable = `CREATE TABLE orders_new (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id INTEGER NOT NULL REFERENCES sessions(id),
	customer_id INTEGER NOT NULL REFERENCES customers(id),
	target_weight REAL,
	portion_type TEXT NOT NULL DEFAULT 'whole',
	size_preference TEXT DEFAULT NULL,
	status TEXT NOT NULL DEFAULT 'pending',
	turkey_id INTEGER REFERENCES turkeys(id),
	created_at TEXT DEFAULT CURRENT_TIMESTAMP
)`

// ordersColumn is one row of PRAGMA table_info(orders).
type ordersColumn struct {
	name    string
	notNull bool
}

// Migrate brings an existing database up to the current orders layout.
//
// The legacy layout predates the category order mode: target_weight was NOT
// NULL and the portion_type/size_preference columns did not exist. SQLite
// cannot relax a NOT NULL constraint in place, so the migration rebuilds the
// table: create orders_new with the relaxed schema, copy every row over
// (letting defaults fill the columns the old layout lacked), drop the old
// table and rename. Dropping a stale orders_new first makes the rebuild safe
// to re-run after an interruption, and a database already on the current
// layout is left untouched.
func Migrate(db *gorm.DB) error {
	columns, err := ordersColumns(db)
	if err != nil {
		return err
	}

	if needsRebuild(columns) {
		if err = rebuildOrdersTable(db, columns); err != nil {
			return err
		}
	}

	return db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)).Error
}

func ordersColumns(db *gorm.DB) ([]ordersColumn, error) {
	rows, err := db.Raw("PRAGMA table_info(orders)").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []ordersColumn
	for rows.Next() {
		var (
			cid          int
			name         string
			columnType   string
			notNull      int
			defaultValue sql.NullString
			primaryKey   int
		)
		if err = rows.Scan(&cid, &name, &columnType, &notNull, &defaultValue, &primaryKey); err != nil {
			return nil, err
		}
		columns = append(columns, ordersColumn{name: name, notNull: notNull == 1})
	}
	return columns, rows.Err()
}

// needsRebuild detects the legacy layout: a NOT NULL target_weight or a
// missing portion_type column.
func needsRebuild(columns []ordersColumn) bool {
	hasPortionType := false
	for _, column := range columns {
		if column.name == "target_weight" && column.notNull {
			return true
		}
		if column.name == "portion_type" {
			hasPortionType = true
		}
	}
	return !hasPortionType
}

func rebuildOrdersTable(db *gorm.DB, columns []ordersColumn) error {
	// Copy only the columns the old layout actually has; the relaxed schema's
	// defaults fill the rest.
	shared := make([]string, 0, len(columns))
	current := map[string]bool{
		"id": true, "session_id": true, "customer_id": true,
		"target_weight": true, "portion_type": true, "size_preference": true,
		"status": true, "turkey_id": true, "created_at": true,
	}
	for _, column := range columns {
		if current[column.name] {
			shared = append(shared, column.name)
		}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		// The v1 layout has a turkeys.order_id column referencing orders, so
		// dropping the old table trips foreign key enforcement mid-rebuild.
		// defer_foreign_keys is transaction-scoped and postpones the check to
		// commit, by which point the renamed table satisfies it again.
		// (PRAGMA foreign_keys is a no-op inside a transaction.)
		statements := []string{
			"PRAGMA defer_foreign_keys = ON",
			"DROP TABLE IF EXISTS orders_new",
			relaxedOrdersTable,
			fmt.Sprintf("INSERT INTO orders_new (%[1]s) SELECT %[1]s FROM orders",
				strings.Join(shared, ", ")),
			"DROP TABLE orders",
			"ALTER TABLE orders_new RENAME TO orders",
		}
		for _, stmt := range statements {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
