// Package persistence provides SQLite-based storage for hex layers.
// Cell data is stored as JSON text, one row per position.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/hexgrid/internal/grid"
	"github.com/talgya/hexgrid/internal/hex"
)

// ErrLayerNotFound is returned when loading a layer that was never saved.
var ErrLayerNotFound = errors.New("layer not found")

// DB wraps a SQLite connection for layer persistence.
type DB struct {
	conn *sqlx.DB
}

// LayerInfo describes one saved layer.
type LayerInfo struct {
	Name     string `db:"name"`
	Snapshot string `db:"snapshot"` // Regenerated on every save
	Cells    int    `db:"cells"`
	SavedAt  string `db:"saved_at"`
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	conn.SetMaxOpenConns(1)

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS layers (
		name TEXT PRIMARY KEY,
		snapshot TEXT NOT NULL,
		cells INTEGER NOT NULL,
		saved_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS cells (
		layer TEXT NOT NULL,
		q NUMERIC NOT NULL,
		r NUMERIC NOT NULL,
		data TEXT NOT NULL,
		PRIMARY KEY (layer, q, r)
	);

	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveLayer writes a layer under name (full replace) and returns the new
// snapshot id.
func SaveLayer[D any, T hex.Number](db *DB, name string, l *grid.Layer[D, T]) (string, error) {
	return SaveLayerWithMeta(db, name, l, nil)
}

// SaveLayerWithMeta is SaveLayer plus meta key-value pairs written in the
// same transaction, so either both land or neither does.
func SaveLayerWithMeta[D any, T hex.Number](db *DB, name string, l *grid.Layer[D, T], meta map[string]string) (string, error) {
	tx, err := db.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM cells WHERE layer = ?", name); err != nil {
		return "", err
	}

	stmt, err := tx.Preparex("INSERT INTO cells (layer, q, r, data) VALUES (?, ?, ?, ?)")
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	cells := l.Cells()
	for _, c := range cells {
		data, err := json.Marshal(c.Data)
		if err != nil {
			return "", fmt.Errorf("encode cell %v: %w", c.Pos, err)
		}
		if _, err := stmt.Exec(name, sqlValue(c.Pos.Q), sqlValue(c.Pos.R), string(data)); err != nil {
			return "", fmt.Errorf("insert cell %v: %w", c.Pos, err)
		}
	}

	snapshot := uuid.NewString()
	_, err = tx.Exec(
		"INSERT OR REPLACE INTO layers (name, snapshot, cells, saved_at) VALUES (?, ?, ?, ?)",
		name, snapshot, len(cells), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", err
	}

	for key, value := range meta {
		if _, err := tx.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)", key, value); err != nil {
			return "", fmt.Errorf("save meta %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	slog.Debug("layer saved", "name", name, "cells", len(cells), "snapshot", snapshot)
	return snapshot, nil
}

// LoadLayer reads the layer saved under name.
func LoadLayer[D any, T hex.Number](db *DB, name string) (*grid.Layer[D, T], error) {
	if _, err := db.Layer(name); err != nil {
		return nil, err
	}

	rows, err := db.conn.Queryx("SELECT q, r, data FROM cells WHERE layer = ?", name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	l := grid.New[D, T]()
	for rows.Next() {
		var q, r any
		var raw string
		if err := rows.Scan(&q, &r, &raw); err != nil {
			return nil, err
		}
		pos, err := position[T](q, r)
		if err != nil {
			return nil, err
		}
		var data D
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return nil, fmt.Errorf("decode cell %v: %w", pos, err)
		}
		l.Set(pos, data)
	}
	return l, rows.Err()
}

// Layer returns the metadata of the layer saved under name.
func (db *DB) Layer(name string) (LayerInfo, error) {
	var info LayerInfo
	err := db.conn.Get(&info, "SELECT name, snapshot, cells, saved_at FROM layers WHERE name = ?", name)
	if errors.Is(err, sql.ErrNoRows) {
		return info, fmt.Errorf("%s: %w", name, ErrLayerNotFound)
	}
	return info, err
}

// Layers lists all saved layers by name.
func (db *DB) Layers() ([]LayerInfo, error) {
	var infos []LayerInfo
	err := db.conn.Select(&infos, "SELECT name, snapshot, cells, saved_at FROM layers ORDER BY name")
	return infos, err
}

// DeleteLayer removes a saved layer and its cells.
func (db *DB) DeleteLayer(name string) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM cells WHERE layer = ?", name); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM layers WHERE name = ?", name); err != nil {
		return err
	}
	return tx.Commit()
}

// SaveMeta stores a key-value pair.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM meta WHERE key = ?", key)
	return value, err
}

// sqlValue widens a coordinate to a type every driver accepts.
func sqlValue[T hex.Number](v T) any {
	if T(1)/T(2) != 0 {
		return float64(v)
	}
	return int64(v)
}

func position[T hex.Number](q, r any) (hex.Position[T], error) {
	qv, err := coordinate[T](q)
	if err != nil {
		return hex.Position[T]{}, err
	}
	rv, err := coordinate[T](r)
	if err != nil {
		return hex.Position[T]{}, err
	}
	return hex.New(qv, rv), nil
}

func coordinate[T hex.Number](v any) (T, error) {
	switch n := v.(type) {
	case int64:
		return T(n), nil
	case float64:
		return T(n), nil
	default:
		return 0, fmt.Errorf("unexpected coordinate type %T", v)
	}
}
