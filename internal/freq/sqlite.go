// SQLite-backed frequency store.
// Responsibilities:
//   - Opening SQLite with safe defaults (busy timeout, WAL).
//   - Applying embedded migrations (idempotent, recorded in _migrations).
//   - Seeding the word_frequency table when it is empty.
//   - Answering Frequency lookups.
//
// Note: a DSN of ":memory:" keeps everything in process; the pool is pinned
// to one connection so every query sees the same database.

package freq

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-assist/assets"
)

// SQLite is a frequency oracle backed by a SQLite database.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens dsn, applies migrations and seeds the table from the
// embedded data if it holds no rows.
func OpenSQLite(ctx context.Context, dsn string) (*SQLite, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(ctx, db, assets.Migrations()); err != nil {
		_ = db.Close()
		return nil, err
	}
	s := &SQLite{db: db}

	n, err := s.count(ctx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if n == 0 {
		entries, err := DefaultEntries()
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		if err := s.Seed(ctx, entries); err != nil {
			_ = db.Close()
			return nil, err
		}
		log.Info().Int("rows", len(entries)).Str("dsn", dsn).Msg("seeded word frequencies")
	}
	return s, nil
}

// openDB opens (and creates if missing) a SQLite database file.
//
//   - Ensures the parent directory exists for relative DSNs (e.g. ./data/freq.db).
//   - Configures busy timeout and WAL journaling for file databases.
func openDB(dsn string) (*sql.DB, error) {
	if dsn == ":memory:" {
		db, err := sql.Open("sqlite3", dsn)
		if err != nil {
			return nil, err
		}
		db.SetMaxOpenConns(1)
		return db, nil
	}

	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate applies *.sql files from migrations in lexical order, each inside
// its own transaction, skipping files already recorded in _migrations.
func migrate(ctx context.Context, db *sql.DB, migrations fs.FS) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	var files []string
	if err := fs.WalkDir(migrations, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("walk migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		body, err := fs.ReadFile(migrations, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, string(body)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

func (s *SQLite) count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM word_frequency`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count word_frequency: %w", err)
	}
	return n, nil
}

// Seed upserts entries in a single transaction.
func (s *SQLite) Seed(ctx context.Context, entries []Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO word_frequency (lang, word, frequency)
        VALUES (?, ?, ?)
        ON CONFLICT(lang, word) DO UPDATE SET frequency = excluded.frequency`)
	if err != nil {
		return fmt.Errorf("prepare seed: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.Lang, e.Word, e.Frequency); err != nil {
			return fmt.Errorf("seed %s/%s: %w", e.Lang, e.Word, err)
		}
	}
	return tx.Commit()
}

// Frequency looks the word up; missing rows and query errors yield 0.
func (s *SQLite) Frequency(word, lang string) float64 {
	var f float64
	err := s.db.QueryRow(
		`SELECT frequency FROM word_frequency WHERE lang=? AND word=?`,
		strings.ToLower(lang), word,
	).Scan(&f)
	if err == sql.ErrNoRows {
		return 0
	}
	if err != nil {
		log.Warn().Err(err).Str("word", word).Msg("frequency lookup")
		return 0
	}
	return f
}

// Close releases the database handle.
func (s *SQLite) Close() error { return s.db.Close() }
