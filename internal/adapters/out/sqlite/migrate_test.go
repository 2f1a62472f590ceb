package sqlite_test

import (
	"path/filepath"
	"testing"

	sqlite_adapter "farmsale/internal/adapters/out/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gorm_sqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// createLegacyDatabase builds the layout that predates the category order
// mode at the given path, with foreign keys enforced the way the application
// runs: target_weight NOT NULL, no portion_type/size_preference columns, and
// a turkeys.order_id column referencing orders. It seeds one matched order
// referenced from both sides, then closes the handle so the caller can reopen
// through OpenDatabase.
func createLegacyDatabase(t *testing.T, path string) {
	t.Helper()

	db, err := gorm.Open(gorm_sqlite.Open(path+"?_foreign_keys=1"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE customers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			price_per_kg REAL NOT NULL,
			status TEXT NOT NULL DEFAULT 'active',
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE turkeys (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id INTEGER NOT NULL REFERENCES sessions(id),
			actual_weight REAL NOT NULL,
			order_id INTEGER REFERENCES orders(id),
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE orders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id INTEGER NOT NULL REFERENCES sessions(id),
			customer_id INTEGER NOT NULL REFERENCES customers(id),
			target_weight REAL NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			turkey_id INTEGER REFERENCES turkeys(id),
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
		`INSERT INTO customers (name) VALUES ('Maier')`,
		`INSERT INTO sessions (date, price_per_kg) VALUES ('2024-12-21', 9.5)`,
		`INSERT INTO turkeys (session_id, actual_weight) VALUES (1, 7.6)`,
		`INSERT INTO orders (session_id, customer_id, target_weight, status, turkey_id)
			VALUES (1, 1, 7.4, 'matched', 1)`,
		`UPDATE turkeys SET order_id = 1 WHERE id = 1`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

func ordersColumnInfo(t *testing.T, db *gorm.DB) map[string]bool {
	t.Helper()

	rows, err := db.Raw("PRAGMA table_info(orders)").Rows()
	require.NoError(t, err)
	defer rows.Close()

	notNull := make(map[string]bool)
	for rows.Next() {
		var (
			cid, nn, pk      int
			name, columnType string
			defaultValue     *string
		)
		require.NoError(t, rows.Scan(&cid, &name, &columnType, &nn, &defaultValue, &pk))
		notNull[name] = nn == 1
	}
	require.NoError(t, rows.Err())
	return notNull
}

func TestOpenDatabaseRebuildsLegacyLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.db")
	createLegacyDatabase(t, path)

	// Opening the store migrates in place, with foreign keys enforced. The
	// seeded turkey still references the matched order while the old table is
	// dropped, so the rebuild must defer the check to commit.
	db, err := sqlite_adapter.OpenDatabase(path)
	require.NoError(t, err)

	columns := ordersColumnInfo(t, db)
	require.Contains(t, columns, "portion_type")
	require.Contains(t, columns, "size_preference")
	assert.False(t, columns["target_weight"], "target_weight must be nullable after the rebuild")

	// The matched order survives with the category defaults filled in and
	// its unit assignment intact.
	var (
		targetWeight float64
		portionType  string
		status       string
		turkeyID     int64
	)
	err = db.Raw(`SELECT target_weight, portion_type, status, turkey_id FROM orders WHERE id = 1`).
		Row().Scan(&targetWeight, &portionType, &status, &turkeyID)
	require.NoError(t, err)
	assert.InDelta(t, 7.4, targetWeight, 1e-9)
	assert.Equal(t, "whole", portionType)
	assert.Equal(t, "matched", status)
	assert.EqualValues(t, 1, turkeyID)

	var version int
	require.NoError(t, db.Raw("PRAGMA user_version").Row().Scan(&version))
	assert.Equal(t, 2, version)
}

func TestOpenDatabaseDropsStaleIntermediateTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.db")
	createLegacyDatabase(t, path)

	// Simulate an interrupted earlier rebuild.
	db, err := gorm.Open(gorm_sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec(`CREATE TABLE orders_new (id INTEGER PRIMARY KEY)`).Error)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	db, err = sqlite_adapter.OpenDatabase(path)
	require.NoError(t, err)

	columns := ordersColumnInfo(t, db)
	require.Contains(t, columns, "portion_type")

	var count int64
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM orders").Row().Scan(&count))
	assert.EqualValues(t, 1, count)
}

func TestMigrateLeavesCurrentLayoutUntouched(t *testing.T) {
	db, err := sqlite_adapter.OpenDatabase(filepath.Join(t.TempDir(), "current.db"))
	require.NoError(t, err)

	require.NoError(t, db.Exec(`INSERT INTO customers (name) VALUES ('Maier')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO sessions (date, price_per_kg) VALUES ('2025-12-20', 10)`).Error)
	require.NoError(t, db.Exec(
		`INSERT INTO orders (session_id, customer_id, portion_type, size_preference) VALUES (1, 1, 'half', 'light')`,
	).Error)

	// Re-running the migration on a current layout must not rebuild.
	require.NoError(t, sqlite_adapter.Migrate(db))

	var portionType, sizePreference string
	err = db.Raw(`SELECT portion_type, size_preference FROM orders WHERE id = 1`).
		Row().Scan(&portionType, &sizePreference)
	require.NoError(t, err)
	assert.Equal(t, "half", portionType)
	assert.Equal(t, "light", sizePreference)
}
