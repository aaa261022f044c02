package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/FreshMeal_Go/internal/domain"
)

const shoppingColumns = `id, name, category, completed, created_at, seq`

// ShoppingRepository implements shopping list persistence for SQLite
type ShoppingRepository struct {
	db *sql.DB
}

// NewShoppingRepository creates a new ShoppingRepository
func NewShoppingRepository(db *sql.DB) *ShoppingRepository {
	return &ShoppingRepository{db: db}
}

func scanShoppingItem(row rowScanner) (domain.ShoppingItem, error) {
	var (
		item    domain.ShoppingItem
		created string
	)
	if err := row.Scan(&item.ID, &item.Name, &item.Category, &item.Completed, &created, &item.Seq); err != nil {
		return item, err
	}
	t, err := parseTime(created)
	if err != nil {
		return item, err
	}
	item.CreatedAt = t
	return item, nil
}

func (r *ShoppingRepository) ListShoppingItems(ctx context.Context) ([]domain.ShoppingItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+shoppingColumns+` FROM shopping_items ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryShoppingItems, err)
	}
	defer rows.Close()

	items := make([]domain.ShoppingItem, 0)
	for rows.Next() {
		item, err := scanShoppingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryShoppingItems, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryShoppingItems, err)
	}
	return items, nil
}

func (r *ShoppingRepository) GetShoppingItem(ctx context.Context, id string) (*domain.ShoppingItem, error) {
	item, err := scanShoppingItem(r.db.QueryRowContext(ctx, `SELECT `+shoppingColumns+` FROM shopping_items WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
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

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	query := `
		INSERT INTO shopping_items (id, name, category, completed, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING seq
	`
	now := time.Now().UTC()
	for i := range items {
		if items[i].CreatedAt.IsZero() {
			items[i].CreatedAt = now
		}
		err := tx.QueryRowContext(ctx, query, items[i].ID, items[i].Name, items[i].Category, items[i].Completed, formatTime(items[i].CreatedAt)).
			Scan(&items[i].Seq)
		if isUniqueViolation(err) {
			return fmt.Errorf("%s %q: %w", ErrMsgFailedToInsertShoppingItem, items[i].Name, domain.ErrConflict)
		}
		if err != nil {
			return fmt.Errorf("%s %q: %w", ErrMsgFailedToInsertShoppingItem, items[i].Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (r *ShoppingRepository) UpdateShoppingItem(ctx context.Context, item *domain.ShoppingItem) error {
	query := `
		UPDATE shopping_items
		SET name = ?2, category = ?3, completed = ?4
		WHERE id = ?1
		RETURNING ` + shoppingColumns
	updated, err := scanShoppingItem(r.db.QueryRowContext(ctx, query, item.ID, item.Name, item.Category, item.Completed))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrShoppingItemNotFound
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateShoppingItem, err)
	}
	*item = updated
	return nil
}

func (r *ShoppingRepository) ToggleShoppingItem(ctx context.Context, id string) (*domain.ShoppingItem, error) {
	query := `
		UPDATE shopping_items
		SET completed = 1 - completed
		WHERE id = ?
		RETURNING ` + shoppingColumns
	item, err := scanShoppingItem(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrShoppingItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToToggleShoppingItem, err)
	}
	return &item, nil
}

func (r *ShoppingRepository) DeleteShoppingItem(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM shopping_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteShoppingItem, err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteShoppingItem, err)
	} else if n == 0 {
		return domain.ErrShoppingItemNotFound
	}
	return nil
}

func (r *ShoppingRepository) DeleteCompletedShoppingItems(ctx context.Context) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM shopping_items WHERE completed = 1`)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToClearShoppingItems, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToClearShoppingItems, err)
	}
	return int(n), nil
}
