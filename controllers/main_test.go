package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestioncursos/config"
	"gestioncursos/database"
	"gestioncursos/routes"
	"gestioncursos/utils"
)

type fixture struct {
	app *fiber.App
	db  *gorm.DB
	cfg *config.Config
}

// newFixture builds the full app wired to a fresh in-memory database, so
// every test starts from seeded states and nothing else.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("could not open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("could not get sql.DB: %v", err)
	}
	// One connection, or each pooled connection would get its own :memory: db
	sqlDB.SetMaxOpenConns(1)

	database.EnsureSchema(db, utils.InitLogger())

	cfg := &config.Config{
		JWTSecret:     "testsecret",
		AdminUser:     "admin",
		AdminPassword: "password123",
		ServerPort:    "8080",
	}

	app := fiber.New()
	routes.SetupRoutes(app, db, cfg)

	return &fixture{app: app, db: db, cfg: cfg}
}

func (f *fixture) login(t *testing.T) string {
	t.Helper()

	resp := f.request(t, "POST", "/api/auth/login", "", map[string]string{
		"username": f.cfg.AdminUser,
		"password": f.cfg.AdminPassword,
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("login failed with status %d", resp.StatusCode)
	}

	result := decodeBody(t, resp)
	token, _ := result["token"].(string)
	if token == "" {
		t.Fatal("login returned no token")
	}
	return token
}

func (f *fixture) request(t *testing.T, method, path, token string, payload interface{}) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("could not marshal payload: %v", err)
		}
		body = bytes.NewReader(jsonData)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := f.app.Test(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("could not decode response body: %v", err)
	}
	return result
}

func decodeList(t *testing.T, resp *http.Response) []map[string]interface{} {
	t.Helper()

	var result []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("could not decode response body: %v", err)
	}
	return result
}
