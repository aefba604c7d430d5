package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jaev1996/atria-fitness/internal/model"
)

// MySQLStore keeps the whole state document in a single row of the
// app_state table, keyed by name.  The body column is JSON; reads and
// writes always move the entire document.
type MySQLStore struct {
	db  *sql.DB
	key string
}

// NewMySQLStore wraps an open database handle.  key names the state row so
// several environments can share one database.
func NewMySQLStore(db *sql.DB, key string) *MySQLStore {
	return &MySQLStore{db: db, key: key}
}

// EnsureSchema creates the app_state table when missing.
func (s *MySQLStore) EnsureSchema(ctx context.Context) error {
	const q = `CREATE TABLE IF NOT EXISTS app_state (
	    name       VARCHAR(64) PRIMARY KEY,
	    body       JSON NOT NULL,
	    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`
	if _, err := s.db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("ensure app_state: %w", err)
	}
	return nil
}

// Load reads the state row and unmarshals it.  When the row does not exist
// yet the store self-initializes: the deterministic seed dataset is written
// and returned.
func (s *MySQLStore) Load(ctx context.Context) (*model.Document, error) {
	const q = `SELECT body FROM app_state WHERE name = ?`
	var body []byte
	err := s.db.QueryRowContext(ctx, q, s.key).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		doc := Seed()
		if err := s.Save(ctx, doc); err != nil {
			return nil, fmt.Errorf("seed state: %w", err)
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	var doc model.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	if doc.Settings.RoomRates == nil {
		doc.Settings.RoomRates = map[string]model.RoomRate{}
	}
	return &doc, nil
}

// Save marshals the document and upserts the state row.
func (s *MySQLStore) Save(ctx context.Context, doc *model.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	const q = `INSERT INTO app_state (name, body) VALUES (?, ?)
	           ON DUPLICATE KEY UPDATE body = VALUES(body)`
	if _, err := s.db.ExecContext(ctx, q, s.key, body); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}
