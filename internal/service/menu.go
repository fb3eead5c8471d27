package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/linemk/menu-site/internal/domain/models"
	"github.com/linemk/menu-site/internal/storage"
)

// MenuService определяет интерфейс бизнес-логики для работы с меню.
type MenuService interface {
	// ListMenu возвращает полный список позиций меню в том порядке,
	// в котором его отдал репозиторий.
	ListMenu(ctx context.Context) ([]*models.MenuItem, error)
	// AddMenuItem добавляет новую позицию в меню.
	AddMenuItem(ctx context.Context, name, description string, priceCents int64, category string) (*models.MenuItem, error)
}

// menuService — конкретная реализация MenuService.
type menuService struct {
	log      *slog.Logger
	menuRepo storage.MenuStorage
}

func NewMenuService(log *slog.Logger, menuRepo storage.MenuStorage) MenuService {
	return &menuService{
		log:      log,
		menuRepo: menuRepo,
	}
}

// ListMenu отдаёт меню как есть: без фильтрации, сортировки и изменения записей.
// Вся ответственность за состав и порядок лежит на хранилище.
func (s *menuService) ListMenu(ctx context.Context) ([]*models.MenuItem, error) {
	const op = "service.MenuService.ListMenu"
	s.log.Info("listing menu", slog.String("op", op))

	items, err := s.menuRepo.ListMenuItems(ctx)
	if err != nil {
		s.log.Error("failed to list menu items", slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to list menu items: %w", op, err)
	}
	return items, nil
}

// AddMenuItem сохраняет новую позицию меню через репозиторий.
func (s *menuService) AddMenuItem(ctx context.Context, name, description string, priceCents int64, category string) (*models.MenuItem, error) {
	const op = "service.MenuService.AddMenuItem"
	logger := s.log.With(slog.String("op", op), slog.String("name", name))
	logger.Info("adding menu item")

	item := &models.MenuItem{
		Name:        name,
		Description: description,
		PriceCents:  priceCents,
		Category:    category,
	}
	created, err := s.menuRepo.CreateMenuItem(ctx, item)
	if err != nil {
		logger.Error("failed to create menu item", slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to create menu item: %w", op, err)
	}

	logger.Info("menu item added", slog.Int64("itemID", created.ID))
	return created, nil
}
