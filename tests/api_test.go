package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const baseURL = "http://localhost:8080"

// MenuItemResponse структура ответа при добавлении позиции меню
type MenuItemResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Category   string `json:"category"`
}

// requireServer пропускает интеграционные тесты, если сервер не запущен
func requireServer(t *testing.T) {
	conn, err := net.DialTimeout("tcp", "localhost:8080", time.Second)
	if err != nil {
		t.Skip("server is not running on localhost:8080, skipping integration test")
	}
	conn.Close()
}

func TestMenuPage(t *testing.T) {
	requireServer(t)

	resp, err := http.Get(baseURL + "/menu")
	assert.NoError(t, err, "Menu request should not error")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode, "Expected 200 OK for menu page")
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html", "Menu page should be HTML")

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Contains(t, string(body), "<html", "Response should be a rendered document")
}

func TestMenuPage_IgnoresQueryParams(t *testing.T) {
	requireServer(t)

	resp1, err := http.Get(baseURL + "/menu?sort=price&page=3")
	assert.NoError(t, err)
	defer resp1.Body.Close()
	body1, err := io.ReadAll(resp1.Body)
	assert.NoError(t, err)

	resp2, err := http.Get(baseURL + "/menu")
	assert.NoError(t, err)
	defer resp2.Body.Close()
	body2, err := io.ReadAll(resp2.Body)
	assert.NoError(t, err)

	assert.Equal(t, resp1.StatusCode, resp2.StatusCode)
	assert.Equal(t, string(body1), string(body2), "Query params must not change the page")
}

func TestAddMenuItemAndSeeItOnPage(t *testing.T) {
	requireServer(t)

	// Добавляем позицию через служебный эндпоинт
	name := "Integration Brew " + time.Now().Format("150405")
	reqBody := []byte(`{"name": "` + name + `", "description": "test item", "price_cents": 410, "category": "drinks"}`)
	resp, err := http.Post(baseURL+"/api/menu", "application/json", bytes.NewBuffer(reqBody))
	assert.NoError(t, err, "Add request should not error")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode, "Expected 201 Created for valid item")

	var created MenuItemResponse
	err = json.NewDecoder(resp.Body).Decode(&created)
	assert.NoError(t, err)
	assert.Equal(t, name, created.Name)
	assert.NotZero(t, created.ID)

	// Новая позиция должна появиться на странице меню
	pageResp, err := http.Get(baseURL + "/menu")
	assert.NoError(t, err)
	defer pageResp.Body.Close()

	page, err := io.ReadAll(pageResp.Body)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(string(page), name), "Menu page should contain the new item")
}

func TestAddMenuItem_ValidationError(t *testing.T) {
	requireServer(t)

	// Цена обязана быть положительной
	reqBody := []byte(`{"name": "Bad Item", "price_cents": 0, "category": "drinks"}`)
	resp, err := http.Post(baseURL+"/api/menu", "application/json", bytes.NewBuffer(reqBody))
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "Expected 400 for invalid item")
}
