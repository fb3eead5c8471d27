package view

import (
	"bytes"
	"net/http"

	"github.com/foolin/goview"
	"github.com/linemk/menu-site/internal/config"
)

// Renderer описывает рендеринг именованного шаблона с контекстом.
// Обработчики зависят только от этого интерфейса, а не от конкретного движка.
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data any) error
}

// goviewRenderer — реализация Renderer поверх goview.
type goviewRenderer struct {
	engine *goview.ViewEngine
}

// New создаёт рендерер шаблонов по настройкам из конфигурации.
// Кэш шаблонов включаем только в prod, чтобы при локальной разработке
// правки в шаблонах подхватывались без перезапуска.
func New(cfg config.TemplatesConfig, env string) Renderer {
	engine := goview.New(goview.Config{
		Root:         cfg.Dir,
		Extension:    cfg.Extension,
		DisableCache: env != "prod",
	})
	return &goviewRenderer{engine: engine}
}

// Render отдаёт документ по имени шаблона. Разрешение имени в файл —
// забота goview; несуществующий шаблон возвращается как ошибка.
// Рендерим сначала в буфер: goview.Render пишет заголовок ответа до
// выполнения шаблона, и при ошибке клиент получил бы 200 вместо 500.
// Пока ошибка возможна, в ResponseWriter ничего не пишем.
func (r *goviewRenderer) Render(w http.ResponseWriter, status int, name string, data any) error {
	buf := new(bytes.Buffer)
	if err := r.engine.RenderWriter(buf, name, data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
