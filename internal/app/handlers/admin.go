package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/linemk/menu-site/internal/service"
)

// AddMenuItemRequest представляет структуру запроса на добавление позиции с тегами валидации
type AddMenuItemRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents" validate:"required,gt=0"`
	Category    string `json:"category" validate:"required"`
}

var validate = validator.New()

// AddMenuItemHandler обрабатывает запрос POST /api/menu.
// Служебный эндпоинт для наполнения меню; страница меню при этом
// остаётся только на чтение.
func AddMenuItemHandler(log *slog.Logger, menuService service.MenuService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.AddMenuItemHandler"
		logger := log.With(slog.String("op", op))

		var req AddMenuItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("invalid request: decoding error", slog.Any("error", err))
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		// Валидация структуры запроса с использованием validator
		if err := validate.Struct(req); err != nil {
			logger.Error("invalid request: validation error", slog.Any("error", err))
			http.Error(w, "validation error", http.StatusBadRequest)
			return
		}

		// Вызов бизнес-логики для сохранения позиции
		item, err := menuService.AddMenuItem(r.Context(), req.Name, req.Description, req.PriceCents, req.Category)
		if err != nil {
			logger.Error("failed to add menu item", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		// Отправка JSON-ответа с сохранённой позицией
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(item); err != nil {
			logger.Error("failed to encode response", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
	}
}
