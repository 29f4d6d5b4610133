// Package cache stores compiled grammar.Table values in a SQLite
// database keyed by a content hash of the grammar source, so
// recompiling the same grammar is a lookup instead of a rebuild.
//
// Store wraps a *sql.DB opened via modernc.org/sqlite (pure Go, no
// cgo), creates its table on first open, and converts each
// non-trivial column through a convertToDB_*/convertFromDB_* helper
// pair. The table blob itself is binary-encoded with
// github.com/dekarrin/rezi and base64-wrapped into a TEXT column.
package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/dekarrin/rezi"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/lrtab/lrtab/grammar"
)

// ErrNotFound is returned by Get when no row matches the given key.
var ErrNotFound = errors.New("cache: not found")

// Entry is one cached compiled table, addressed by both a stable
// content key and a UUID row identity: the UUID lets entries be
// listed and referenced individually even across recompiles of the
// same source, which share a content key.
type Entry struct {
	ID        uuid.UUID
	Key       string
	Table     *grammar.Table
	CreatedAt time.Time
}

// Store is a SQLite-backed cache of compiled tables.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the SQLite database at path and
// ensures its schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, wrapDBError(err)
	}

	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS tables (
		id TEXT NOT NULL PRIMARY KEY,
		content_key TEXT NOT NULL UNIQUE,
		blob TEXT NOT NULL,
		created INTEGER NOT NULL
	);`)
	if err != nil {
		return wrapDBError(err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ContentKey hashes a grammar's textual source into the key Get/Put
// use, so a byte-for-byte identical grammar source always hits the
// same row.
func ContentKey(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

func toBlob(table *grammar.Table) *tableBlob {
	return &tableBlob{TableDump: table.Dump()}
}

func fromBlob(b *tableBlob) (*grammar.Table, error) {
	return grammar.LoadTable(b.TableDump)
}

// Put stores table under key, replacing any existing row with an
// equal key.
func (s *Store) Put(ctx context.Context, key string, table *grammar.Table) (Entry, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return Entry{}, fmt.Errorf("could not generate cache row id: %w", err)
	}

	blob := toBlob(table)
	data := rezi.EncBinary(blob)
	now := time.Now()

	_, err = s.db.ExecContext(ctx, `INSERT INTO tables (id, content_key, blob, created)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(content_key) DO UPDATE SET id=excluded.id, blob=excluded.blob, created=excluded.created`,
		id.String(), key, convertToDB_ByteSlice(data), now.Unix(),
	)
	if err != nil {
		return Entry{}, wrapDBError(err)
	}

	return Entry{ID: id, Key: key, Table: table, CreatedAt: now}, nil
}

// Get looks up a previously Put table by content key. It returns
// ErrNotFound if no row matches.
func (s *Store) Get(ctx context.Context, key string) (Entry, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, blob, created FROM tables WHERE content_key = ?`, key)

	var idStr, blobStr string
	var created int64
	if err := row.Scan(&idStr, &blobStr, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, wrapDBError(err)
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return Entry{}, fmt.Errorf("stored cache id %q is invalid: %w", idStr, err)
	}

	var data []byte
	if err := convertFromDB_ByteSlice(blobStr, &data); err != nil {
		return Entry{}, fmt.Errorf("decode stored blob: %w", err)
	}

	blob := &tableBlob{}
	n, err := rezi.DecBinary(data, blob)
	if err != nil {
		return Entry{}, fmt.Errorf("rezi decode: %w", err)
	}
	if n != len(data) {
		return Entry{}, fmt.Errorf("rezi decoded byte count mismatch; consumed %d/%d bytes", n, len(data))
	}

	table, err := fromBlob(blob)
	if err != nil {
		return Entry{}, err
	}

	return Entry{ID: id, Key: key, Table: table, CreatedAt: time.Unix(created, 0)}, nil
}

// List returns every cached entry's metadata (without rebuilding the
// full Table), newest first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, content_key, created FROM tables ORDER BY created DESC, rowid DESC`)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var idStr, key string
		var created int64
		if err := rows.Scan(&idStr, &key, &created); err != nil {
			return out, wrapDBError(err)
		}
		id, err := uuid.Parse(idStr)
		if err != nil {
			return out, fmt.Errorf("stored cache id %q is invalid: %w", idStr, err)
		}
		out = append(out, Entry{ID: id, Key: key, CreatedAt: time.Unix(created, 0)})
	}
	if err := rows.Err(); err != nil {
		return out, wrapDBError(err)
	}
	return out, nil
}

func wrapDBError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("cache: %w", err)
}

// convertToDB_ByteSlice converts bytes to storage DB format on disk.
func convertToDB_ByteSlice(b []byte) string {
	if len(b) < 1 {
		return ""
	}
	return base64.StdEncoding.EncodeToString(b)
}

// convertFromDB_ByteSlice converts a storage DB format value to bytes
// and stores them at the address pointed to by target.
func convertFromDB_ByteSlice(s string, target *[]byte) error {
	if s == "" {
		*target = nil
		return nil
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return err
	}
	*target = b
	return nil
}
