package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FreshMeal_Go/internal/domain"
)

const shoppingColumns = `id, name, category, completed, created_at, seq`

// ShoppingRepository implements shopping list persistence for PostgreSQL
type ShoppingRepository struct {
	db *pgxpool.Pool
}

// NewShoppingRepository creates a new ShoppingRepository
func NewShoppingRepository(db *pgxpool.Pool) *ShoppingRepository {
	return &ShoppingRepository{db: db}
}

func scanShoppingItem(row pgx.Row) (domain.ShoppingItem, error) {
	var item domain.ShoppingItem
	err := row.Scan(&item.ID, &item.Name, &item.Category, &item.Completed, &item.CreatedAt, &item.Seq)
	return item, err
}

func (r *ShoppingRepository) ListShoppingItems(ctx context.Context) ([]domain.ShoppingItem, error) {
	rows, err := r.db.Query(ctx, `SELECT `+shoppingColumns+` FROM shopping_items ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryShoppingItems, err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ShoppingItem, error) {
		return scanShoppingItem(row)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryShoppingItems, err)
	}
	return items, nil
}

func (r *ShoppingRepository) GetShoppingItem(ctx context.Context, id string) (*domain.ShoppingItem, error) {
	if !validID(id) {
		return nil, nil
	}

	item, err := scanShoppingItem(r.db.QueryRow(ctx, `SELECT `+shoppingColumns+` FROM shopping_items WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetShoppingItem, err)
	}
	return &item, nil
}

// InsertShoppingItems writes the batch in one transaction so Seq follows slice order
func (r *ShoppingRepository) InsertShoppingItems(ctx context.Context, items []domain.ShoppingItem) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	query := `
		INSERT INTO shopping_items (id, name, category, completed, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING seq, created_at
	`
	now := time.Now().UTC()
	for i := range items {
		if items[i].CreatedAt.IsZero() {
			items[i].CreatedAt = now
		}
		err := tx.QueryRow(ctx, query, items[i].ID, items[i].Name, items[i].Category, items[i].Completed, items[i].CreatedAt).
			Scan(&items[i].Seq, &items[i].CreatedAt)
		if hasPgCode(err, PgErrorCodeUniqueViolation) {
			return fmt.Errorf("%s %q: %w", ErrMsgFailedToInsertShoppingItem, items[i].Name, domain.ErrConflict)
		}
		if err != nil {
			return fmt.Errorf("%s %q: %w", ErrMsgFailedToInsertShoppingItem, items[i].Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (r *ShoppingRepository) UpdateShoppingItem(ctx context.Context, item *domain.ShoppingItem) error {
	if !validID(item.ID) {
		return domain.ErrShoppingItemNotFound
	}

	query := `
		UPDATE shopping_items
		SET name = $2, category = $3, completed = $4
		WHERE id = $1
		RETURNING ` + shoppingColumns
	updated, err := scanShoppingItem(r.db.QueryRow(ctx, query, item.ID, item.Name, item.Category, item.Completed))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrShoppingItemNotFound
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateShoppingItem, err)
	}
	*item = updated
	return nil
}

func (r *ShoppingRepository) ToggleShoppingItem(ctx context.Context, id string) (*domain.ShoppingItem, error) {
	if !validID(id) {
		return nil, domain.ErrShoppingItemNotFound
	}

	query := `
		UPDATE shopping_items
		SET completed = NOT completed
		WHERE id = $1
		RETURNING ` + shoppingColumns
	item, err := scanShoppingItem(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrShoppingItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToToggleShoppingItem, err)
	}
	return &item, nil
}

func (r *ShoppingRepository) DeleteShoppingItem(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrShoppingItemNotFound
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM shopping_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteShoppingItem, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrShoppingItemNotFound
	}
	return nil
}

func (r *ShoppingRepository) DeleteCompletedShoppingItems(ctx context.Context) (int, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM shopping_items WHERE completed`)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToClearShoppingItems, err)
	}
	return int(tag.RowsAffected()), nil
}
