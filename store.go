package inkpost

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = sql.ErrNoRows

// ErrDuplicateTitle is returned when an insert or update would give two
// posts the same title.
var ErrDuplicateTitle = errors.New("a post with this title already exists")

// Store wraps a SQLite database and provides CRUD operations for blog posts.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the posts table if absent.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// Enable WAL mode for concurrent read/write access and set a busy
	// timeout so writers wait instead of returning SQLITE_BUSY immediately.
	// synchronous=NORMAL is safe with WAL and avoids an fsync per transaction.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ensureSchema is idempotent and runs once at startup. AUTOINCREMENT keeps
// SQLite from ever handing out the id of a deleted row again.
func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS posts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL UNIQUE,
    subtitle TEXT NOT NULL,
    date TEXT NOT NULL,
    body TEXT NOT NULL,
    author TEXT NOT NULL,
    img_url TEXT NOT NULL
);
`)
	return err
}

// ListPosts returns all posts, newest first.
func (s *Store) ListPosts() ([]BlogPost, error) {
	rows, err := s.db.Query(`SELECT id, title, subtitle, date, body, author, img_url FROM posts ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []BlogPost
	for rows.Next() {
		var p BlogPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Subtitle, &p.Date, &p.Body, &p.Author, &p.ImgURL); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// GetPost returns a single post by id, or ErrNotFound.
func (s *Store) GetPost(id int64) (BlogPost, error) {
	p := BlogPost{ID: id}
	err := s.db.QueryRow(`SELECT title, subtitle, date, body, author, img_url FROM posts WHERE id = ?`, id).
		Scan(&p.Title, &p.Subtitle, &p.Date, &p.Body, &p.Author, &p.ImgURL)
	if err != nil {
		return BlogPost{}, err
	}
	return p, nil
}

// InsertPost persists a new post and returns its assigned id.
// A duplicate title is reported as ErrDuplicateTitle.
func (s *Store) InsertPost(p BlogPost) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO posts (title, subtitle, date, body, author, img_url) VALUES (?, ?, ?, ?, ?, ?)`,
		p.Title, p.Subtitle, p.Date, p.Body, p.Author, p.ImgURL)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateTitle
		}
		return 0, err
	}
	return res.LastInsertId()
}

// UpdatePost replaces every field of an existing post except id and date.
// Returns ErrNotFound if no row has p.ID, and ErrDuplicateTitle if the new
// title collides with another post.
func (s *Store) UpdatePost(p BlogPost) error {
	res, err := s.db.Exec(`UPDATE posts SET title = ?, subtitle = ?, body = ?, author = ?, img_url = ? WHERE id = ?`,
		p.Title, p.Subtitle, p.Body, p.Author, p.ImgURL, p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateTitle
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePost removes a post by id. Deleting an absent id is a no-op, not
// an error.
func (s *Store) DeletePost(id int64) error {
	_, err := s.db.Exec(`DELETE FROM posts WHERE id = ?`, id)
	return err
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
