package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/lmendesdev/lookkg/internal/apperr"
	"github.com/lmendesdev/lookkg/internal/catalog"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// searchFields lists every item field Search matches a query against.
var searchFields = []string{"nome", "categoria", "cor", "material", "estilo", "ocasion", "clima", "padrao"}

// SQLiteStore is the default CatalogStore implementation: a single `items`
// table in an embedded SQLite file under dataDir. Writes are serialized by
// mu so concurrent requests can't race on the same row.
type SQLiteStore struct {
	mu sync.Mutex
	db *sql.DB
}

// Open creates (if needed) dataDir and the catalog.db file inside it, runs
// the embedded schema, and returns a ready SQLiteStore.
func Open(dataDir string) (*SQLiteStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, apperr.NewStoreFailure("open", err)
	}
	dbPath := filepath.Join(dataDir, "catalog.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, apperr.NewStoreFailure("open", err)
	}
	db.SetMaxOpenConns(1) // single writer; modernc.org/sqlite serializes anyway

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, apperr.NewStoreFailure("migrate", err)
	}
	return &SQLiteStore{db: db}, nil
}

// runMigrations applies the embedded goose migrations against the sqlite3
// dialect, using an embedded filesystem instead of a relative "migrations"
// directory since this store ships as a single binary with no accompanying
// migrations/ folder on disk.
func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrationFS)
	defer goose.SetBaseFS(nil)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.Up(db, "migrations")
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func scanItem(row interface {
	Scan(dest ...any) error
}) (catalog.Item, error) {
	var it catalog.Item
	err := row.Scan(&it.ItemID, &it.Nome, &it.Categoria, &it.Cor, &it.Padrao,
		&it.Material, &it.Estilo, &it.Ocasion, &it.Clima, &it.Paleta)
	return it, err
}

// LoadAll returns every item in the store, ordered by item_id. A missing
// backing file was already created with an empty table by Open. A corrupt
// or unreadable file is not turned into an empty catalog: Open fails on it
// with a StoreFailure, so LoadAll never runs against one.
func (s *SQLiteStore) LoadAll(ctx context.Context) ([]catalog.Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT item_id, nome, categoria, cor, padrao, material, estilo, ocasion, clima, paleta
		FROM items ORDER BY item_id
	`)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil, apperr.NewCancelled(ctx.Err())
		}
		return nil, apperr.NewStoreFailure("load_all", err)
	}
	defer rows.Close()

	var out []catalog.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, apperr.NewStoreFailure("load_all", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// Get returns the item for itemID, or nil if absent.
func (s *SQLiteStore) Get(ctx context.Context, itemID string) (*catalog.Item, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT item_id, nome, categoria, cor, padrao, material, estilo, ocasion, clima, paleta
		FROM items WHERE item_id = ?
	`, itemID)
	it, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.NewStoreFailure("get", err)
	}
	return &it, nil
}

func generateItemID(categoria string) string {
	prefix := categoria
	if prefix == "" {
		prefix = "item"
	}
	if len(prefix) > 10 {
		prefix = prefix[:10]
	}
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("%s_%s", prefix, suffix)
}

// Add upserts item keyed by item_id, or by normalized (nome, categoria) when
// item_id is absent; generates an item_id if missing.
func (s *SQLiteStore) Add(ctx context.Context, item catalog.Item) (catalog.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ItemID == "" {
		if existing, err := s.findByNomeCategoria(ctx, item.Nome, item.Categoria); err != nil {
			return catalog.Item{}, err
		} else if existing != nil {
			item.ItemID = existing.ItemID
		} else {
			item.ItemID = generateItemID(item.Categoria)
		}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO items (item_id, nome, categoria, cor, padrao, material, estilo, ocasion, clima, paleta)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(item_id) DO UPDATE SET
			nome=excluded.nome, categoria=excluded.categoria, cor=excluded.cor,
			padrao=excluded.padrao, material=excluded.material, estilo=excluded.estilo,
			ocasion=excluded.ocasion, clima=excluded.clima, paleta=excluded.paleta
	`, item.ItemID, item.Nome, item.Categoria, item.Cor, item.Padrao,
		item.Material, item.Estilo, item.Ocasion, item.Clima, item.Paleta)
	if err != nil {
		return catalog.Item{}, apperr.NewStoreFailure("add", err)
	}
	return item, nil
}

func (s *SQLiteStore) findByNomeCategoria(ctx context.Context, nome, categoria string) (*catalog.Item, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT item_id, nome, categoria, cor, padrao, material, estilo, ocasion, clima, paleta
		FROM items WHERE lower(nome) = lower(?) AND lower(categoria) = lower(?)
	`, nome, categoria)
	it, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.NewStoreFailure("add", err)
	}
	return &it, nil
}

// Delete removes the item for itemID. ok reports whether a row existed.
func (s *SQLiteStore) Delete(ctx context.Context, itemID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE item_id = ?`, itemID)
	if err != nil {
		return false, apperr.NewStoreFailure("delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, apperr.NewStoreFailure("delete", err)
	}
	return n > 0, nil
}

// Search performs a case-insensitive substring match across every field in
// searchFields, truncated to limit.
func (s *SQLiteStore) Search(ctx context.Context, query string, limit int) ([]catalog.Item, error) {
	all, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		if limit > 0 && limit < len(all) {
			return all[:limit], nil
		}
		return all, nil
	}

	var out []catalog.Item
	for _, it := range all {
		if matchesQuery(it, q) {
			out = append(out, it)
		}
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func matchesQuery(it catalog.Item, q string) bool {
	values := map[string]string{
		"nome": it.Nome, "categoria": it.Categoria, "cor": it.Cor,
		"material": it.Material, "estilo": it.Estilo, "ocasion": it.Ocasion,
		"clima": it.Clima, "padrao": it.Padrao,
	}
	var hay strings.Builder
	for _, f := range searchFields {
		hay.WriteString(strings.ToLower(values[f]))
		hay.WriteByte(' ')
	}
	return strings.Contains(hay.String(), q)
}
