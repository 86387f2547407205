package archive

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/xxh3"
	_ "modernc.org/sqlite"

	"github.com/tdmkit/dvec"
	"github.com/tdmkit/dvec/codec"
	"github.com/tdmkit/dvec/internal/logger"
	"github.com/tdmkit/dvec/types"
)

var (
	// ErrNotFound is returned when no archive entry has the requested ID.
	ErrNotFound = errors.New("archive: entry not found")

	// ErrDigestMismatch is returned when a stored payload no longer hashes
	// to the digest recorded with it.
	ErrDigestMismatch = errors.New("archive: payload digest mismatch")

	// ErrNameRequired is returned when an entry is stored without a name.
	ErrNameRequired = errors.New("archive: entry name is required")
)

const schema = `
CREATE TABLE IF NOT EXISTS vectors (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	zoning       TEXT NOT NULL,
	segmentation TEXT NOT NULL,
	time_format  TEXT NOT NULL,
	digest       TEXT NOT NULL,
	size         INTEGER NOT NULL,
	payload      BLOB NOT NULL,
	created_at   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS vectors_by_name ON vectors(name, created_at);
`

// Entry describes one archived vector.
type Entry struct {
	// ID is the generated unique identifier of this entry.
	ID string

	// Name is the caller-supplied label, shared by versions of the same
	// vector.
	Name string

	// Zoning is the zoning name the vector was archived with, empty for
	// zoneless vectors.
	Zoning string

	// Segmentation is the segmentation name the vector was archived with.
	Segmentation string

	// TimeFormat is the vector's time format in its string form.
	TimeFormat string

	// Digest is the xxh3 hash of the encoded payload, in hex.
	Digest string

	// Size is the encoded payload size in bytes.
	Size int64

	// CreatedAt is the archival timestamp in UTC.
	CreatedAt time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for archive operations.
func WithLogger(log types.Logger) Option {
	return func(s *Store) {
		s.logger = log
	}
}

// Store is a SQLite-backed archive of encoded vectors. It is safe for
// concurrent use.
type Store struct {
	db     *sql.DB
	logger types.Logger
}

// Open opens or creates the archive database at path and runs migrations.
//
// Parameters:
//   - path: SQLite database path, created when absent
//   - opts: Optional configuration (WithLogger)
//
// Returns:
//   - *Store: The opened archive
//   - error: The driver's open, pragma or migration error
func Open(path string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set journal mode: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate archive: %w", err)
	}

	s := &Store{
		db:     db,
		logger: logger.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put archives a vector under name and returns its catalogue entry.
//
// Parameters:
//   - ctx: Context for the database write
//   - name: Label the entry is listed under
//   - v: The vector to archive
//
// Returns:
//   - Entry: The stored entry, including its generated ID and digest
//   - error: ErrNameRequired, dvec.ErrNilVector, encoding or database errors
func (s *Store) Put(ctx context.Context, name string, v *dvec.Vector) (Entry, error) {
	if v == nil {
		return Entry{}, fmt.Errorf("%w: archive payload", dvec.ErrNilVector)
	}

	var buf bytes.Buffer
	if err := v.Encode(&buf); err != nil {
		return Entry{}, err
	}

	return s.PutEncoded(ctx, name, buf.Bytes())
}

// PutEncoded archives an already-encoded vector payload, as produced by
// Vector.Encode or Vector.Save. The blob is decoded once to validate it and
// to read its catalogue fields, then stored verbatim.
//
// Parameters:
//   - ctx: Context for the database write
//   - name: Label the entry is listed under
//   - blob: A complete payload in the dvec binary format
//
// Returns:
//   - Entry: The stored entry, including its generated ID and digest
//   - error: ErrNameRequired, codec errors for an unreadable blob, or
//     database errors
func (s *Store) PutEncoded(ctx context.Context, name string, blob []byte) (Entry, error) {
	if name == "" {
		return Entry{}, ErrNameRequired
	}

	payload, err := codec.Decode(bytes.NewReader(blob))
	if err != nil {
		return Entry{}, fmt.Errorf("archive payload: %w", err)
	}

	entry := Entry{
		ID:           uuid.NewString(),
		Name:         name,
		Zoning:       payload.ZoningName,
		Segmentation: payload.SegmentationName,
		TimeFormat:   payload.TimeFormat,
		Digest:       digest(blob),
		Size:         int64(len(blob)),
		CreatedAt:    time.Now().UTC(),
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO vectors (id, name, zoning, segmentation, time_format, digest, size, payload, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Name, entry.Zoning, entry.Segmentation, entry.TimeFormat,
		entry.Digest, entry.Size, blob, entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("insert entry: %w", err)
	}

	s.logger.Info("archived vector",
		"id", entry.ID,
		"name", entry.Name,
		"segmentation", entry.Segmentation,
		"bytes", entry.Size,
	)

	return entry, nil
}

// Get loads an archived vector, verifying the stored payload against its
// digest before decoding.
//
// Parameters:
//   - ctx: Context for the database read
//   - id: The entry ID to load
//   - resolver: Supplies the named zoning and segmentation oracles
//   - opts: Optional configuration applied to the decoded vector
//
// Returns:
//   - *dvec.Vector: The decoded vector
//   - error: ErrNotFound, ErrDigestMismatch, or any Decode error
func (s *Store) Get(ctx context.Context, id string, resolver types.Resolver, opts ...dvec.Option) (*dvec.Vector, error) {
	_, blob, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	return dvec.Decode(bytes.NewReader(blob), resolver, opts...)
}

// Export writes an archived payload to w verbatim, after verifying its
// digest. The output is a valid vector file as written by Vector.Save.
//
// Parameters:
//   - ctx: Context for the database read
//   - id: The entry ID to export
//   - w: Destination writer
//
// Returns:
//   - Entry: The exported entry
//   - error: ErrNotFound, ErrDigestMismatch or the writer's error
func (s *Store) Export(ctx context.Context, id string, w io.Writer) (Entry, error) {
	entry, blob, err := s.fetch(ctx, id)
	if err != nil {
		return Entry{}, err
	}
	if _, err := w.Write(blob); err != nil {
		return Entry{}, err
	}

	return entry, nil
}

// Stat returns the catalogue entry for id without touching its payload.
//
// Returns:
//   - Entry: The stored entry
//   - error: ErrNotFound or a database error
func (s *Store) Stat(ctx context.Context, id string) (Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, zoning, segmentation, time_format, digest, size, created_at
		 FROM vectors WHERE id = ?`, id)

	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	return entry, err
}

// List returns catalogue entries, newest first.
//
// Parameters:
//   - ctx: Context for the database read
//   - name: Restrict to entries with this name; empty lists everything
//   - limit: Maximum entries returned; non-positive means no limit
//
// Returns:
//   - []Entry: The matching entries, newest first
//   - error: A database error
func (s *Store) List(ctx context.Context, name string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}

	query := `SELECT id, name, zoning, segmentation, time_format, digest, size, created_at
		 FROM vectors ORDER BY created_at DESC, id LIMIT ?`
	args := []any{limit}
	if name != "" {
		query = `SELECT id, name, zoning, segmentation, time_format, digest, size, created_at
		 FROM vectors WHERE name = ? ORDER BY created_at DESC, id LIMIT ?`
		args = []any{name, limit}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Delete removes an entry and its payload.
//
// Returns:
//   - error: ErrNotFound when nothing was stored under id
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM vectors WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	s.logger.Info("deleted archive entry", "id", id)

	return nil
}

// fetch reads an entry with its payload and verifies the digest.
func (s *Store) fetch(ctx context.Context, id string) (Entry, []byte, error) {
	var (
		entry      Entry
		blob       []byte
		createdStr string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, zoning, segmentation, time_format, digest, size, payload, created_at
		 FROM vectors WHERE id = ?`, id,
	).Scan(&entry.ID, &entry.Name, &entry.Zoning, &entry.Segmentation,
		&entry.TimeFormat, &entry.Digest, &entry.Size, &blob, &createdStr)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if err != nil {
		return Entry{}, nil, fmt.Errorf("get entry %q: %w", id, err)
	}
	entry.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)

	if got := digest(blob); got != entry.Digest {
		return Entry{}, nil, fmt.Errorf("%w: entry %q stored %s, payload hashes to %s",
			ErrDigestMismatch, id, entry.Digest, got)
	}

	return entry, blob, nil
}

// scanEntry reads one payload-free entry row.
func scanEntry(row interface{ Scan(...any) error }) (Entry, error) {
	var (
		entry      Entry
		createdStr string
	)
	err := row.Scan(&entry.ID, &entry.Name, &entry.Zoning, &entry.Segmentation,
		&entry.TimeFormat, &entry.Digest, &entry.Size, &createdStr)
	if err != nil {
		return Entry{}, err
	}
	entry.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)

	return entry, nil
}

// digest hashes an encoded payload for storage alongside it.
func digest(blob []byte) string {
	return fmt.Sprintf("%016x", xxh3.Hash(blob))
}
