package repository

import (
	"database/sql"

	"github.com/airaware/cleanmap-backend-go/internal/database"
)

// PurgeCaches drops every cached reading and fire response in one
// transaction, so a half-purged cache is never observable.
func PurgeCaches() error {
	return database.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM reading_cache"); err != nil {
			return err
		}
		if _, err := tx.Exec("DELETE FROM fire_cache"); err != nil {
			return err
		}
		return nil
	})
}
