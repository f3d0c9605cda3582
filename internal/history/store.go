package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/xrforge/internal/db"
	"github.com/ziadkadry99/xrforge/internal/scene"
)

const (
	// DefaultLimit is used by Recent when limit <= 0.
	DefaultLimit = 20
	// MaxLimit caps the number of rows Recent returns.
	MaxLimit = 500
)

// timeLayout is fixed-width so that created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Store provides access to the generation history.
type Store struct {
	db  *db.DB
	now func() time.Time
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database, now: time.Now}
}

// Record inserts a new entry. A UUID is generated when entry.ID is empty and
// CreatedAt defaults to the current time. The stored entry is returned.
func (s *Store) Record(ctx context.Context, entry Entry) (Entry, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Source == "" {
		entry.Source = SourceCLI
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}
	entry.CreatedAt = entry.CreatedAt.UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO generations (id, prompt, topic, source, created_at) VALUES (?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Prompt,
		string(entry.Topic),
		string(entry.Source),
		entry.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("inserting history entry: %w", err)
	}
	return entry, nil
}

// Get retrieves a single entry by ID.
func (s *Store) Get(ctx context.Context, id string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, prompt, topic, source, created_at FROM generations WHERE id = ?`, id)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading history entry %s: %w", id, err)
	}
	return e, nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, prompt, topic, source, created_at FROM generations
		 ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// CountByTopic returns the number of recorded requests per topic. Topics
// never requested are reported with a zero count.
func (s *Store) CountByTopic(ctx context.Context) (map[scene.Topic]int, error) {
	counts := make(map[scene.Topic]int)
	for _, t := range scene.Topics() {
		counts[t] = 0
	}

	rows, err := s.db.QueryContext(ctx, `SELECT topic, COUNT(*) FROM generations GROUP BY topic`)
	if err != nil {
		return nil, fmt.Errorf("counting history: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			topic string
			n     int
		)
		if err := rows.Scan(&topic, &n); err != nil {
			return nil, err
		}
		counts[scene.Topic(topic)] = n
	}
	return counts, rows.Err()
}

// scanner is implemented by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (*Entry, error) {
	var (
		e             Entry
		topic, source string
		created       string
	)
	if err := sc.Scan(&e.ID, &e.Prompt, &topic, &source, &created); err != nil {
		return nil, err
	}
	e.Topic = scene.Topic(topic)
	e.Source = Source(source)
	if t, err := time.Parse(time.RFC3339Nano, created); err == nil {
		e.CreatedAt = t
	}
	return &e, nil
}
