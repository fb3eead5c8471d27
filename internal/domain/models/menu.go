package models

import (
	"fmt"
	"time"
)

// MenuItem представляет одну позицию меню кафе
type MenuItem struct {
	ID          int64     `json:"id"`          // Уникальный идентификатор позиции
	Name        string    `json:"name"`        // Название блюда или напитка
	Description string    `json:"description"` // Краткое описание для страницы меню
	PriceCents  int64     `json:"price_cents"` // Цена в центах, чтобы не работать с float
	Category    string    `json:"category"`    // Категория (напитки, выпечка и т.д.)
	CreatedAt   time.Time `json:"created_at"`
}

// Price форматирует цену для вывода в шаблоне
func (m *MenuItem) Price() string {
	return fmt.Sprintf("$%.2f", float64(m.PriceCents)/100)
}
