// Package archive keeps a sqlite record of forward runs: the layered model,
// the survey, the resulting sounding and the noise settings that produced
// it, so synthetic data handed off for interpretation can always be traced
// back to the model that made it.
package archive

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/gob"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/maseology/dcres"
	"github.com/maseology/dcres/earth"

	_ "modernc.org/sqlite"
)

// Run is one archived forward model.
type Run struct {
	ID      string
	Name    string
	Created time.Time
	Rho, H  []float64 // the layered model
	Srv     *dcres.Survey
	Data    *dcres.DataSet
	Sdev    float64 // relative noise applied, 0 for a clean run
	Seed    int64
}

// Store is a sqlite-backed run archive.
type Store struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

// NewStore points an archive at a sqlite file, created on Init.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Init opens the database and creates the run table if absent.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("archive: sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			created INTEGER NOT NULL,
			stack BLOB NOT NULL,
			survey BLOB NOT NULL,
			data BLOB NOT NULL,
			sdev REAL NOT NULL,
			seed INTEGER NOT NULL
		)
	`); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, errors.New("archive: store not initialized")
	}
	return s.db, nil
}

type gobRun struct {
	Rho, H []float64
	Srv    *dcres.Survey
	Data   *dcres.DataSet
}

// SaveRun archives a forward run, minting an ID when the run carries none.
func (s *Store) SaveRun(ctx context.Context, name string, ls *earth.LayerStack, srv *dcres.Survey, ds *dcres.DataSet, sdev float64, seed int64) (string, error) {
	db, err := s.getDB()
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	enc := func(v interface{}) ([]byte, error) {
		var b bytes.Buffer
		if err := gob.NewEncoder(&b).Encode(v); err != nil {
			return nil, err
		}
		return b.Bytes(), nil
	}
	stk, err := enc(gobRun{Rho: ls.Resistivities(), H: ls.Thicknesses()})
	if err != nil {
		return "", fmt.Errorf("archive: encode stack: %w", err)
	}
	sv, err := enc(srv)
	if err != nil {
		return "", fmt.Errorf("archive: encode survey: %w", err)
	}
	dt, err := enc(ds)
	if err != nil {
		return "", fmt.Errorf("archive: encode data: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO runs (id, name, created, stack, survey, data, sdev, seed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, name, time.Now().Unix(), stk, sv, dt, sdev, seed)
	if err != nil {
		return "", err
	}
	return id, nil
}

// GetRun recovers an archived run by ID; the bool reports whether it exists.
func (s *Store) GetRun(ctx context.Context, id string) (Run, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return Run{}, false, err
	}

	var (
		r           Run
		created     int64
		stk, sv, dt []byte
	)
	err = db.QueryRowContext(ctx, `
		SELECT id, name, created, stack, survey, data, sdev, seed FROM runs WHERE id = ?
	`, id).Scan(&r.ID, &r.Name, &created, &stk, &sv, &dt, &r.Sdev, &r.Seed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, false, nil
		}
		return Run{}, false, err
	}
	r.Created = time.Unix(created, 0)

	var g gobRun
	if err := gob.NewDecoder(bytes.NewReader(stk)).Decode(&g); err != nil {
		return Run{}, false, fmt.Errorf("archive: decode stack %s: %w", id, err)
	}
	r.Rho, r.H = g.Rho, g.H
	if err := gob.NewDecoder(bytes.NewReader(sv)).Decode(&r.Srv); err != nil {
		return Run{}, false, fmt.Errorf("archive: decode survey %s: %w", id, err)
	}
	if err := gob.NewDecoder(bytes.NewReader(dt)).Decode(&r.Data); err != nil {
		return Run{}, false, fmt.Errorf("archive: decode data %s: %w", id, err)
	}
	return r, true, nil
}

// RunInfo is a catalogue row, newest first from ListRuns.
type RunInfo struct {
	ID, Name string
	Created  time.Time
	NConfig  int
	Sdev     float64
}

// ListRuns catalogues the archive, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]RunInfo, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, name, created, data, sdev FROM runs ORDER BY created DESC, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunInfo
	for rows.Next() {
		var (
			ri      RunInfo
			created int64
			dt      []byte
		)
		if err := rows.Scan(&ri.ID, &ri.Name, &created, &dt, &ri.Sdev); err != nil {
			return nil, err
		}
		ri.Created = time.Unix(created, 0)
		var ds dcres.DataSet
		if err := gob.NewDecoder(bytes.NewReader(dt)).Decode(&ds); err != nil {
			return nil, fmt.Errorf("archive: decode data %s: %w", ri.ID, err)
		}
		ri.NConfig = len(ds.D)
		out = append(out, ri)
	}
	return out, rows.Err()
}
