package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"quotedesk/go_backend/internal/domain/catalog"
	"quotedesk/go_backend/internal/domain/quote"
)

// Schema creates the hosted tables when they do not exist.
const Schema = `
CREATE TABLE IF NOT EXISTS inventory (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	"desc"       TEXT NOT NULL DEFAULT '',
	cost         DOUBLE PRECISION NOT NULL DEFAULT 0,
	margin       DOUBLE PRECISION NOT NULL DEFAULT 0,
	pvp          DOUBLE PRECISION NOT NULL DEFAULT 0,
	type         TEXT NOT NULL DEFAULT 'unique',
	observations TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS budgets (
	id              TEXT PRIMARY KEY,
	sequence_id     TEXT NOT NULL,
	client_name     TEXT NOT NULL,
	project_name    TEXT NOT NULL,
	comments        TEXT NOT NULL DEFAULT '',
	total_unique    DOUBLE PRECISION NOT NULL DEFAULT 0,
	total_recurring DOUBLE PRECISION NOT NULL DEFAULT 0,
	created_at      TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS budget_items (
	id            BIGSERIAL PRIMARY KEY,
	budget_id     TEXT NOT NULL REFERENCES budgets(id) ON DELETE CASCADE,
	product_id    TEXT NOT NULL,
	quantity      INTEGER NOT NULL,
	discount      DOUBLE PRECISION NOT NULL DEFAULT 0,
	discount_type TEXT NOT NULL,
	final_price   DOUBLE PRECISION NOT NULL
);`

const upsertInventorySQL = `INSERT INTO inventory (id, name, "desc", cost, margin, pvp, type, observations)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE SET
	name = EXCLUDED.name, "desc" = EXCLUDED."desc", cost = EXCLUDED.cost, margin = EXCLUDED.margin,
	pvp = EXCLUDED.pvp, type = EXCLUDED.type, observations = EXCLUDED.observations`

const insertBudgetItemSQL = `INSERT INTO budget_items (budget_id, product_id, quantity, discount, discount_type, final_price)
VALUES ($1, $2, $3, $4, $5, $6)`

// Store is the hosted database reached directly over the Postgres protocol.
type Store struct {
	db *DB
}

func NewStore(db *DB) *Store { return &Store{db: db} }

func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.db.Pool.Exec(ctx, Schema)
	return err
}

func (s *Store) Ping(ctx context.Context) error {
	var id string
	err := s.db.Pool.QueryRow(ctx, `SELECT id FROM inventory LIMIT 1`).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	return err
}

func (s *Store) UpsertCatalog(ctx context.Context, items []catalog.Item) error {
	if len(items) == 0 {
		return nil
	}
	return s.sendBatch(ctx, inventoryBatch(items))
}

func (s *Store) FetchCatalog(ctx context.Context) ([]catalog.Item, error) {
	rows, err := s.db.Pool.Query(ctx,
		`SELECT id, name, "desc", cost, margin, pvp, type, observations FROM inventory ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []catalog.Item
	for rows.Next() {
		var it catalog.Item
		var code string
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Cost, &it.Margin, &it.UnitPrice, &code, &it.Notes); err != nil {
			return nil, err
		}
		it.BillingType = catalog.ParseRemoteCode(code)
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *Store) InsertQuoteHeader(ctx context.Context, q quote.Quote) error {
	_, err := s.db.Pool.Exec(ctx,
		`INSERT INTO budgets (id, sequence_id, client_name, project_name, comments, total_unique, total_recurring, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		q.ID, q.SequenceID, q.ClientName, q.ProjectName, q.Notes, q.TotalOneTime, q.TotalRecurring, q.CreatedAt.UTC())
	return err
}

func (s *Store) InsertQuoteLines(ctx context.Context, q quote.Quote) error {
	if len(q.Lines) == 0 {
		return nil
	}
	return s.sendBatch(ctx, budgetItemsBatch(q))
}

func (s *Store) sendBatch(ctx context.Context, b *pgx.Batch) error {
	br := s.db.Pool.SendBatch(ctx, b)
	defer br.Close()
	for i := 0; i < b.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("batch statement %d: %w", i, err)
		}
	}
	return br.Close()
}

func inventoryBatch(items []catalog.Item) *pgx.Batch {
	b := &pgx.Batch{}
	for _, it := range items {
		b.Queue(upsertInventorySQL, it.ID, it.Name, it.Description, it.Cost, it.Margin, it.UnitPrice,
			it.BillingType.RemoteCode(), it.Notes)
	}
	return b
}

func budgetItemsBatch(q quote.Quote) *pgx.Batch {
	b := &pgx.Batch{}
	for _, l := range q.Lines {
		b.Queue(insertBudgetItemSQL, q.ID, l.ID, l.Quantity, l.Discount.Value, string(l.Discount.Kind), quote.LineTotal(l))
	}
	return b
}
