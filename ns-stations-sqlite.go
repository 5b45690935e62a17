package nstimes

import (
	"database/sql"

	"github.com/pkg/errors"

	_ "modernc.org/sqlite"
)

const createStationsTable = `
	CREATE TABLE IF NOT EXISTS stations (
		name     TEXT PRIMARY KEY,
		uic_code TEXT NOT NULL
	)`

func openStationsDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open stations database %s", path)
	}
	if _, err := db.Exec(createStationsTable); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to create stations table")
	}
	return db, nil
}

func loadStationsSQLite(path string) (Stations, error) {
	db, err := openStationsDB(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(`SELECT name, uic_code FROM stations`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query stations")
	}
	defer rows.Close()

	stations := Stations{}
	for rows.Next() {
		var name, code string
		if err := rows.Scan(&name, &code); err != nil {
			return nil, errors.Wrap(err, "failed to scan station")
		}
		stations[name] = code
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read stations")
	}
	return stations, nil
}

// saveStationsSQLite replaces the whole table in a single transaction.
func saveStationsSQLite(path string, stations Stations) error {
	db, err := openStationsDB(path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM stations`); err != nil {
		return errors.Wrap(err, "failed to clear stations")
	}
	stmt, err := tx.Prepare(`INSERT INTO stations (name, uic_code) VALUES (?, ?)`)
	if err != nil {
		return errors.Wrap(err, "failed to prepare insert")
	}
	defer stmt.Close()
	for _, name := range stations.Names() {
		if _, err := stmt.Exec(name, stations[name]); err != nil {
			return errors.Wrapf(err, "failed to insert station %s", name)
		}
	}
	return tx.Commit()
}
