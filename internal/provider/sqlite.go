package provider

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"adminsearch/internal/domain"
	"adminsearch/internal/logging"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS products (
	id     TEXT PRIMARY KEY,
	name   TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS categories (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	status        TEXT NOT NULL DEFAULT '',
	product_count INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS category_products (
	category_id TEXT NOT NULL REFERENCES categories(id),
	product_id  TEXT NOT NULL REFERENCES products(id),
	position    INTEGER NOT NULL,
	PRIMARY KEY (category_id, product_id)
);
`

// SQLiteCatalog is a Catalog stored in SQLite
type SQLiteCatalog struct {
	db *sql.DB
}

// OpenSQLite opens or creates the catalog at path (":memory:" for a
// throwaway database). An empty database is seeded with the demo catalog.
func OpenSQLite(ctx context.Context, path string) (*SQLiteCatalog, error) {
	log := logging.NewLogger("sqlite")

	dsn := path
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	dsn += sep + "_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}
	// A memory database lives and dies with its connection
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect catalog database: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate catalog schema: %w", err)
	}

	c := &SQLiteCatalog{db: db}

	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to inspect catalog: %w", err)
	}
	if n == 0 {
		log.WithField("path", path).Info("Seeding empty catalog database")
		if err := Seed(ctx, c); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return c, nil
}

// Close closes the database
func (c *SQLiteCatalog) Close() error {
	return c.db.Close()
}

func (c *SQLiteCatalog) PutProduct(ctx context.Context, p domain.Product) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO products (id, name, status) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name, status = excluded.status`,
		p.ID, p.Name, string(p.Status))
	if err != nil {
		return fmt.Errorf("put product %s: %w", p.ID, err)
	}
	return nil
}

func (c *SQLiteCatalog) PutCategory(ctx context.Context, cat domain.Category) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, status, product_count) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name, status = excluded.status,
		   product_count = excluded.product_count`,
		cat.ID, cat.Name, string(cat.Status), cat.ProductCount)
	if err != nil {
		return fmt.Errorf("put category %s: %w", cat.ID, err)
	}
	return nil
}

func (c *SQLiteCatalog) Assign(ctx context.Context, categoryID string, productIDs ...string) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("assign %s: %w", categoryID, err)
	}
	defer func() { _ = tx.Rollback() }()

	var next int
	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position), -1) + 1 FROM category_products WHERE category_id = ?`,
		categoryID).Scan(&next); err != nil {
		return fmt.Errorf("assign %s: %w", categoryID, err)
	}
	for i, id := range productIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO category_products (category_id, product_id, position) VALUES (?, ?, ?)`,
			categoryID, id, next+i); err != nil {
			return fmt.Errorf("assign %s to %s: %w", id, categoryID, err)
		}
	}
	return tx.Commit()
}

func (c *SQLiteCatalog) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	return c.queryProducts(ctx,
		`SELECT id, name, status FROM products
		 WHERE instr(lower(name), lower(?)) > 0 ORDER BY rowid`, query)
}

func (c *SQLiteCatalog) SearchCategories(ctx context.Context, query string) ([]domain.Category, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, name, status, product_count FROM categories
		 WHERE instr(lower(name), lower(?)) > 0 ORDER BY rowid`, query)
	if err != nil {
		return nil, fmt.Errorf("search categories: %w", err)
	}
	defer rows.Close()

	var out []domain.Category
	for rows.Next() {
		var cat domain.Category
		var status string
		if err := rows.Scan(&cat.ID, &cat.Name, &status, &cat.ProductCount); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		cat.Status = domain.ParseStatus(status)
		out = append(out, cat)
	}
	return out, rows.Err()
}

func (c *SQLiteCatalog) Product(ctx context.Context, id string) (domain.Product, error) {
	var p domain.Product
	var status string
	err := c.db.QueryRowContext(ctx,
		`SELECT id, name, status FROM products WHERE id = ?`, id).Scan(&p.ID, &p.Name, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("product %s: %w", id, err)
	}
	p.Status = domain.ParseStatus(status)
	return p, nil
}

func (c *SQLiteCatalog) Category(ctx context.Context, id string) (domain.Category, error) {
	var cat domain.Category
	var status string
	err := c.db.QueryRowContext(ctx,
		`SELECT id, name, status, product_count FROM categories WHERE id = ?`, id).
		Scan(&cat.ID, &cat.Name, &status, &cat.ProductCount)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Category{}, fmt.Errorf("category %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return domain.Category{}, fmt.Errorf("category %s: %w", id, err)
	}
	cat.Status = domain.ParseStatus(status)
	return cat, nil
}

func (c *SQLiteCatalog) CategoryProducts(ctx context.Context, categoryID string) ([]domain.Product, error) {
	if _, err := c.Category(ctx, categoryID); err != nil {
		return nil, err
	}
	return c.queryProducts(ctx,
		`SELECT p.id, p.name, p.status FROM category_products cp
		 JOIN products p ON p.id = cp.product_id
		 WHERE cp.category_id = ? ORDER BY cp.position`, categoryID)
}

func (c *SQLiteCatalog) queryProducts(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		var p domain.Product
		var status string
		if err := rows.Scan(&p.ID, &p.Name, &status); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Status = domain.ParseStatus(status)
		out = append(out, p)
	}
	return out, rows.Err()
}
