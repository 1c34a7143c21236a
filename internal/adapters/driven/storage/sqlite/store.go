package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/lakeseed/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/lakeseed/internal/core/domain"
	"github.com/custodia-labs/lakeseed/internal/core/ports/driven"
	"github.com/custodia-labs/lakeseed/internal/logger"
)

// Ensure Store implements the registry interface.
var _ driven.StoreRegistry = (*Store)(nil)

// DatabaseFile is the database file name inside the data directory.
const DatabaseFile = "lakeseed.db"

// Store is a SQLite-backed store registry. All departments share one
// database; rows are partitioned by the department column.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.lakeseed/data/lakeseed.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".lakeseed", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DatabaseFile)

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	logger.Debug("SQLite store opened at %s", dbPath)
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Store returns the department's view of the database.
func (s *Store) Store(dept domain.Department) (driven.DocumentStore, error) {
	if !dept.IsValid() {
		return nil, domain.ErrUnknownDepartment
	}
	return &documentStore{db: s.db, department: string(dept)}, nil
}

func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_documents.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT OR IGNORE INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
		logger.Debug("Applied migration %s", name)
	}

	return nil
}

// documentStore is one department's slice of the documents table.
type documentStore struct {
	db         *sql.DB
	department string
}

// Upsert replaces the row for key with the JSON-encoded fields.
func (s *documentStore) Upsert(ctx context.Context, collection domain.Collection, key string, fields domain.Fields) error {
	body := make(domain.Fields, len(fields)+1)
	for k, v := range fields {
		body[k] = v
	}
	body[domain.IDField] = key

	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding document %s: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (department, collection, doc_key, body, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(department, collection, doc_key) DO UPDATE SET
			body = excluded.body,
			updated_at = excluded.updated_at
	`, s.department, string(collection), key, string(data), time.Now().UTC().Format(time.RFC3339Nano))
	return err
}

// Drop deletes every row in the collection for this department.
func (s *documentStore) Drop(ctx context.Context, collection domain.Collection) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM documents WHERE department = ? AND collection = ?",
		s.department, string(collection))
	return err
}

// Count returns the number of rows in the collection for this department.
func (s *documentStore) Count(ctx context.Context, collection domain.Collection) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM documents WHERE department = ? AND collection = ?",
		s.department, string(collection)).Scan(&n)
	return n, err
}

// Get decodes the stored body for key.
func (s *documentStore) Get(ctx context.Context, collection domain.Collection, key string) (domain.Fields, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		"SELECT body FROM documents WHERE department = ? AND collection = ? AND doc_key = ?",
		s.department, string(collection), key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var fields domain.Fields
	if err := json.Unmarshal([]byte(data), &fields); err != nil {
		return nil, fmt.Errorf("decoding document %s: %w", key, err)
	}
	return fields, nil
}

// Keys returns every key in the collection, sorted.
func (s *documentStore) Keys(ctx context.Context, collection domain.Collection) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT doc_key FROM documents WHERE department = ? AND collection = ? ORDER BY doc_key",
		s.department, string(collection))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
