package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"vehicles-api/internal/domain"
)

const schema = `CREATE TABLE IF NOT EXISTS vehicles (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	year INTEGER NOT NULL,
	make TEXT NOT NULL,
	model TEXT NOT NULL
);`

// SQLiteRepository stores vehicles in a SQLite database.
// AUTOINCREMENT keeps IDs from being reused after deletes.
type SQLiteRepository struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and applies the schema.
func OpenSQLite(ctx context.Context, path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}

	// A single connection serializes writers and keeps in-memory databases shared.
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{`PRAGMA journal_mode=WAL;`, schema} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrating sqlite: %w", err)
		}
	}

	return &SQLiteRepository{db: db}, nil
}

// Close releases the underlying database.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Create inserts v and returns it with its assigned ID.
func (r *SQLiteRepository) Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO vehicles (year, make, model) VALUES (?, ?, ?)`,
		v.Year, v.Make, v.Model,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting vehicle: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading vehicle id: %w", err)
	}

	created := v.Clone()
	created.ID = id
	return created, nil
}

// FindByID retrieves a vehicle by its ID.
func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, year, make, model FROM vehicles WHERE id = ?`, id,
	)

	var v domain.Vehicle
	if err := row.Scan(&v.ID, &v.Year, &v.Make, &v.Model); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reading vehicle: %w", err)
	}

	return &v, nil
}

// Update replaces the stored fields of the vehicle with v.ID.
func (r *SQLiteRepository) Update(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE vehicles SET year = ?, make = ?, model = ? WHERE id = ?`,
		v.Year, v.Make, v.Model, v.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating vehicle: %w", err)
	}

	if err := requireOneRow(res); err != nil {
		return nil, err
	}
	return v.Clone(), nil
}

// Delete removes the vehicle with the given ID.
func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting vehicle: %w", err)
	}
	return requireOneRow(res)
}

// List scans every row in ID order and keeps those accepted by pred.
func (r *SQLiteRepository) List(ctx context.Context, pred domain.Predicate) ([]*domain.Vehicle, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, year, make, model FROM vehicles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing vehicles: %w", err)
	}
	defer rows.Close()

	out := []*domain.Vehicle{}
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Year, &v.Make, &v.Model); err != nil {
			return nil, fmt.Errorf("scanning vehicle: %w", err)
		}
		if pred == nil || pred(&v) {
			out = append(out, &v)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing vehicles: %w", err)
	}

	return out, nil
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
