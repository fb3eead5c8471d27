package handlers

import (
	"log/slog"
	"net/http"

	"github.com/foolin/goview"
	"github.com/linemk/menu-site/internal/service"
	"github.com/linemk/menu-site/internal/view"
)

// MenuHandler обрабатывает запрос GET /menu.
// Он получает полный список позиций меню через MenuService и отдаёт
// HTML-страницу, отрендеренную из шаблона "menu". Параметры запроса
// не используются: страница зависит только от содержимого БД.
func MenuHandler(log *slog.Logger, menuService service.MenuService, renderer view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.MenuHandler"
		logger := log.With(slog.String("op", op))

		// Читаем все позиции меню, как есть: без фильтрации и сортировки
		items, err := menuService.ListMenu(r.Context())
		if err != nil {
			logger.Error("failed to list menu", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		// Контекст шаблона: один ключ "menu" со всем списком
		if err := renderer.Render(w, http.StatusOK, "menu", goview.M{"menu": items}); err != nil {
			logger.Error("failed to render menu page", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}
}
