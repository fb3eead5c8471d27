package storage

import (
	"context"
	"database/sql"

	"github.com/linemk/menu-site/internal/domain/models"
)

// MenuStorage описывает методы для работы с таблицей меню.
type MenuStorage interface {
	// ListMenuItems возвращает все позиции меню без фильтрации, в порядке вставки.
	ListMenuItems(ctx context.Context) ([]*models.MenuItem, error)
	// CreateMenuItem добавляет новую позицию в меню и возвращает её с заполненным ID.
	CreateMenuItem(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error)
}

// menuRepository — конкретная реализация интерфейса MenuStorage.
type menuRepository struct {
	db *sql.DB
}

// NewMenuRepository создаёт новый репозиторий меню.
func NewMenuRepository(db *sql.DB) MenuStorage {
	return &menuRepository{db: db}
}

// ListMenuItems читает таблицу menu целиком. Порядок фиксируем по id,
// чтобы страница меню была стабильной между запросами.
func (r *menuRepository) ListMenuItems(ctx context.Context) ([]*models.MenuItem, error) {
	query := `
		SELECT id, name, description, price_cents, category, created_at
		FROM menu
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.MenuItem
	for rows.Next() {
		item := &models.MenuItem{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.PriceCents, &item.Category, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateMenuItem вставляет новую позицию в таблицу menu.
func (r *menuRepository) CreateMenuItem(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO menu (name, description, price_cents, category, created_at) VALUES ($1, $2, $3, $4, NOW()) RETURNING id",
		item.Name, item.Description, item.PriceCents, item.Category,
	).Scan(&id)
	if err != nil {
		return nil, err
	}
	item.ID = id
	return item, nil
}
