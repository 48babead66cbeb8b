package naisite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/nurseassist/naisite/assets"
	"github.com/nurseassist/naisite/content"
	"github.com/nurseassist/naisite/leads"
)

// ErrSlugTaken is returned when a rename targets a slug another article owns.
var ErrSlugTaken = errors.New("slug already in use")

// Store wraps the site database: articles, leads and uploaded images.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets readers proceed during writes; busy_timeout makes writers wait
	// instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
		PRAGMA mmap_size=268435456;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    slug TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    date TEXT NOT NULL,
    author TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT '',
    excerpt TEXT NOT NULL DEFAULT '',
    image TEXT NOT NULL DEFAULT '',
    tags TEXT NOT NULL DEFAULT '',
    keywords TEXT NOT NULL DEFAULT '',
    aliases TEXT NOT NULL DEFAULT '',
    read_time TEXT NOT NULL DEFAULT '',
    featured INTEGER NOT NULL DEFAULT 0,
    views INTEGER NOT NULL DEFAULT 0,
    likes INTEGER NOT NULL DEFAULT 0,
    comments INTEGER NOT NULL DEFAULT 0,
    body TEXT NOT NULL,
    published INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS idx_articles_date ON articles(date);

CREATE TABLE IF NOT EXISTS leads (
    id TEXT PRIMARY KEY,
    kind TEXT NOT NULL,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT NOT NULL DEFAULT '',
    course TEXT NOT NULL DEFAULT '',
    message TEXT NOT NULL DEFAULT '',
    friend_name TEXT NOT NULL DEFAULT '',
    friend_email TEXT NOT NULL DEFAULT '',
    friend_phone TEXT NOT NULL DEFAULT '',
    ip_hash TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS images (
    bucket TEXT NOT NULL,
    filename TEXT NOT NULL,
    original_name TEXT NOT NULL,
    width INTEGER NOT NULL,
    height INTEGER NOT NULL,
    size INTEGER NOT NULL,
    uploaded_at TEXT NOT NULL,
    PRIMARY KEY (bucket, filename)
);

CREATE TABLE IF NOT EXISTS seeded_slugs (
    slug TEXT PRIMARY KEY,
    seeded_at TEXT NOT NULL
);
`)
	return err
}

const articleColumns = `slug, title, date, author, category, excerpt, image, tags, keywords, aliases,
	read_time, featured, views, likes, comments, body, published`

type scanner interface {
	Scan(dest ...any) error
}

func scanArticle(row scanner) (content.Article, error) {
	var (
		a                       content.Article
		tags, keywords, aliases string
		featured, published     int
	)
	err := row.Scan(&a.Slug, &a.Title, &a.Date, &a.Author, &a.Category, &a.Excerpt, &a.Image,
		&tags, &keywords, &aliases, &a.ReadTime, &featured, &a.Views, &a.Likes, &a.Comments,
		&a.Body, &published)
	if err != nil {
		return content.Article{}, err
	}
	a.Tags = ParseList(tags)
	a.Keywords = ParseList(keywords)
	a.Aliases = ParseList(aliases)
	a.Featured = featured == 1
	a.Published = published == 1
	return a, nil
}

func (s *Store) queryArticles(ctx context.Context, query string, args ...any) ([]content.Article, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []content.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// ListArticles returns published articles, newest first.
func (s *Store) ListArticles(ctx context.Context) ([]content.Article, error) {
	return s.queryArticles(ctx, `SELECT `+articleColumns+` FROM articles WHERE published = 1 ORDER BY date DESC, slug`)
}

// ListAllArticles returns every article including drafts, newest first.
func (s *Store) ListAllArticles(ctx context.Context) ([]content.Article, error) {
	return s.queryArticles(ctx, `SELECT `+articleColumns+` FROM articles ORDER BY date DESC, slug`)
}

// GetArticleAny returns an article by slug regardless of published status (for admin).
func (s *Store) GetArticleAny(ctx context.Context, slug string) (content.Article, error) {
	return scanArticle(s.db.QueryRowContext(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE slug = ?`, slug))
}

// ResolveAlias returns the slug of the published article listing alias as
// one of its legacy slugs.
func (s *Store) ResolveAlias(ctx context.Context, alias string) (string, error) {
	var slug string
	err := s.db.QueryRowContext(ctx,
		`SELECT slug FROM articles WHERE published = 1 AND instr(aliases, ',' || ? || ',') > 0 LIMIT 1`,
		strings.TrimSpace(alias)).Scan(&slug)
	return slug, err
}

// insertArticle builds an insert statement; verb is "INSERT", "INSERT OR
// REPLACE" or "INSERT OR IGNORE".
func insertArticle(verb string) string {
	return verb + ` INTO articles (` + articleColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
}

func articleArgs(a content.Article) []any {
	return []any{a.Slug, a.Title, a.Date, a.Author, a.Category, a.Excerpt, a.Image,
		JoinList(a.Tags), JoinList(a.Keywords), JoinList(a.Aliases), a.ReadTime,
		boolInt(a.Featured), a.Views, a.Likes, a.Comments, a.Body, boolInt(a.Published)}
}

// SaveArticle upserts an article.
func (s *Store) SaveArticle(ctx context.Context, a content.Article) error {
	_, err := s.db.ExecContext(ctx, insertArticle("INSERT OR REPLACE"), articleArgs(a)...)
	return err
}

// RenameArticle replaces the article stored under oldSlug with a, which
// carries the new slug. It fails with ErrSlugTaken when another article
// already owns a.Slug, and leaves the store untouched on any error.
func (s *Store) RenameArticle(ctx context.Context, oldSlug string, a content.Article) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var n int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM articles WHERE slug = ?`, a.Slug).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return ErrSlugTaken
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM articles WHERE slug = ?`, oldSlug)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	if _, err := tx.ExecContext(ctx, insertArticle("INSERT"), articleArgs(a)...); err != nil {
		return fmt.Errorf("insert %s: %w", a.Slug, err)
	}
	return tx.Commit()
}

// SeedArticles inserts catalog articles the store has never seen and reports
// how many were added. Each slug is seeded at most once, so articles deleted
// or renamed in admin stay that way across restarts. A slug that a stored
// article lists among its aliases counts as seen.
func (s *Store) SeedArticles(ctx context.Context, articles []content.Article) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	added := 0
	for _, a := range articles {
		var seen int
		err := tx.QueryRowContext(ctx, `SELECT
			(SELECT COUNT(*) FROM seeded_slugs WHERE slug = ?) +
			(SELECT COUNT(*) FROM articles WHERE instr(aliases, ',' || ? || ',') > 0)`,
			a.Slug, a.Slug).Scan(&seen)
		if err != nil {
			return 0, fmt.Errorf("seed %s: %w", a.Slug, err)
		}
		if seen == 0 {
			res, err := tx.ExecContext(ctx, insertArticle("INSERT OR IGNORE"), articleArgs(a)...)
			if err != nil {
				return 0, fmt.Errorf("seed %s: %w", a.Slug, err)
			}
			if n, _ := res.RowsAffected(); n > 0 {
				added++
			}
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO seeded_slugs (slug, seeded_at) VALUES (?, ?)`, a.Slug, now); err != nil {
			return 0, fmt.Errorf("mark %s seeded: %w", a.Slug, err)
		}
	}
	return added, tx.Commit()
}

// DeleteArticle removes an article by slug.
func (s *Store) DeleteArticle(ctx context.Context, slug string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM articles WHERE slug = ?`, slug)
	return err
}

// SaveLead stores a form submission.
func (s *Store) SaveLead(ctx context.Context, l leads.Lead) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO leads
		(id, kind, name, email, phone, course, message, friend_name, friend_email, friend_phone, ip_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, string(l.Kind), l.Name, l.Email, l.Phone, l.Course, l.Message,
		l.FriendName, l.FriendEmail, l.FriendPhone, l.IPHash, l.CreatedAt.UTC().Format(time.RFC3339))
	return err
}

// ListLeads returns up to limit leads, newest first.
func (s *Store) ListLeads(ctx context.Context, limit int) ([]leads.Lead, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, kind, name, email, phone, course, message,
		friend_name, friend_email, friend_phone, ip_hash, created_at
		FROM leads ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []leads.Lead
	for rows.Next() {
		var (
			l          leads.Lead
			kind, when string
		)
		if err := rows.Scan(&l.ID, &kind, &l.Name, &l.Email, &l.Phone, &l.Course, &l.Message,
			&l.FriendName, &l.FriendEmail, &l.FriendPhone, &l.IPHash, &when); err != nil {
			return nil, err
		}
		l.Kind = leads.Kind(kind)
		l.CreatedAt, _ = time.Parse(time.RFC3339, when)
		out = append(out, l)
	}
	return out, rows.Err()
}

// SaveImage records an uploaded image.
func (s *Store) SaveImage(ctx context.Context, img assets.Image) error {
	_, err := s.db.ExecContext(ctx, `INSERT OR REPLACE INTO images
		(bucket, filename, original_name, width, height, size, uploaded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		img.Bucket, img.Filename, img.OriginalName, img.Width, img.Height, img.Size, img.UploadedAt)
	return err
}

// ListImages returns the images in bucket, newest first.
func (s *Store) ListImages(ctx context.Context, bucket string) ([]assets.Image, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT bucket, filename, original_name, width, height, size, uploaded_at
		FROM images WHERE bucket = ? ORDER BY uploaded_at DESC, filename`, bucket)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []assets.Image
	for rows.Next() {
		var img assets.Image
		if err := rows.Scan(&img.Bucket, &img.Filename, &img.OriginalName,
			&img.Width, &img.Height, &img.Size, &img.UploadedAt); err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

// ImageExists reports whether filename is recorded in bucket.
func (s *Store) ImageExists(ctx context.Context, bucket, filename string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM images WHERE bucket = ? AND filename = ?`, bucket, filename).Scan(&n)
	return n > 0, err
}

// DeleteImage removes an image record.
func (s *Store) DeleteImage(ctx context.Context, bucket, filename string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM images WHERE bucket = ? AND filename = ?`, bucket, filename)
	return err
}

// JoinList encodes values as ",a,b," so a single value can be matched with
// instr(column, ',' || ? || ',').
func JoinList(vals []string) string {
	vals = FilterEmpty(vals)
	if len(vals) == 0 {
		return ""
	}
	return "," + strings.Join(vals, ",") + ","
}

// ParseList splits a JoinList string (e.g. ",OSCE,NCLEX,") into a slice.
func ParseList(s string) []string {
	s = strings.Trim(s, ",")
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
