package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ashmarin/vault-serve/migrations"
)

// OpenSQLite opens (creating if necessary) the local cache database at path
// and applies pending schema migrations. Parent directories are created
// with owner-only permissions; the vault cache never needs to be readable
// by other users.
func OpenSQLite(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create cache dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite cache: %w", err)
	}

	// sqlite handles one writer at a time; a single connection avoids
	// SQLITE_BUSY under concurrent handlers.
	db.SetMaxOpenConns(1)

	if err := migrations.Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
