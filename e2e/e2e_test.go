//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"vet-registry-go/internal/config"
	"vet-registry-go/internal/db"
	chipsdomain "vet-registry-go/internal/domain/chips"
	ownersdomain "vet-registry-go/internal/domain/owners"
	petsdomain "vet-registry-go/internal/domain/pets"
	chipsrepo "vet-registry-go/internal/repository/postgres/chips"
	ownersrepo "vet-registry-go/internal/repository/postgres/owners"
	petsrepo "vet-registry-go/internal/repository/postgres/pets"
	"vet-registry-go/internal/transport/httpserver"
	"vet-registry-go/internal/transport/httpserver/handler"
	"vet-registry-go/pkg/logger"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	server *httptest.Server
	db     *gorm.DB
}

func setupE2E(t *testing.T) *testEnv {
	t.Helper()

	dsn := os.Getenv("E2E_DB_DSN")
	if dsn == "" {
		t.Skip("E2E_DB_DSN not set; skipping e2e tests")
	}

	dbConn, err := db.NewPostgres(config.DBConfig{DSN: dsn})
	require.NoError(t, err, "db connect")
	require.NoError(t, db.Migrate(dbConn), "migrate")
	require.NoError(t, cleanDB(dbConn), "clean db")

	log := logger.NewNop()

	ownerRepo := ownersrepo.NewPostgres(dbConn)
	petRepo := petsrepo.NewPostgres(dbConn)
	chipRepo := chipsrepo.NewPostgres(dbConn)

	ownerService := ownersdomain.NewService(ownerRepo, petRepo)
	petService := petsdomain.NewService(petRepo, chipRepo, ownerRepo)
	chipService := chipsdomain.NewService(chipRepo)

	handlers := handler.New(ownerService, petService, chipService, log)
	server := httptest.NewServer(httpserver.NewRouter(handlers))
	t.Cleanup(server.Close)

	return &testEnv{server: server, db: dbConn}
}

func cleanDB(dbConn *gorm.DB) error {
	return dbConn.Exec("TRUNCATE chips, pets, owners RESTART IDENTITY CASCADE").Error
}

func (env *testEnv) request(t *testing.T, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, env.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := env.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var decoded map[string]any
	if resp.ContentLength != 0 && resp.StatusCode != http.StatusNoContent {
		_ = json.NewDecoder(resp.Body).Decode(&decoded)
	}
	return resp, decoded
}

func TestRegistryLifecycle(t *testing.T) {
	env := setupE2E(t)

	// Register an owner.
	resp, body := env.request(t, http.MethodPost, "/api/owners", map[string]any{
		"national_id": "123", "name": "Ana", "surname": "Lopez",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	ownerID := int64(body["id"].(float64))
	require.Positive(t, ownerID)

	// A second owner with the same national id among active rows is refused.
	resp, body = env.request(t, http.MethodPost, "/api/owners", map[string]any{
		"national_id": "123", "name": "Beto", "surname": "Diaz",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	// Register a pet together with its chip.
	resp, body = env.request(t, http.MethodPost, "/api/pets", map[string]any{
		"owner_id": ownerID, "name": "Rex", "species": "dog",
		"chip": map[string]any{"code": "C1"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	petID := int64(body["id"].(float64))
	chip := body["chip"].(map[string]any)
	require.Equal(t, "C1", chip["code"])

	// The eager read brings back owner and chip in one go.
	resp, body = env.request(t, http.MethodGet, fmt.Sprintf("/api/pets/%d", petID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Ana", body["owner"].(map[string]any)["name"])
	require.Equal(t, "C1", body["chip"].(map[string]any)["code"])

	// The owner cannot be deleted while the pet is active.
	resp, body = env.request(t, http.MethodDelete, fmt.Sprintf("/api/owners/%d", ownerID), nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	message := body["error"].(map[string]any)["message"].(string)
	require.Contains(t, message, "1 active pet")

	// Direct chip deletion is refused outright.
	chipID := int64(chip["id"].(float64))
	resp, _ = env.request(t, http.MethodDelete, fmt.Sprintf("/api/chips/%d", chipID), nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Deleting the pet cascades to the chip.
	resp, _ = env.request(t, http.MethodDelete, fmt.Sprintf("/api/pets/%d", petID), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = env.request(t, http.MethodGet, fmt.Sprintf("/api/pets/%d", petID), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = env.request(t, http.MethodGet, "/api/chips?code=C1", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Now the owner delete goes through, and the list is empty.
	resp, _ = env.request(t, http.MethodDelete, fmt.Sprintf("/api/owners/%d", ownerID), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body = env.request(t, http.MethodGet, "/api/owners", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, body["items"])

	// Soft-deleted values are reusable.
	resp, _ = env.request(t, http.MethodPost, "/api/owners", map[string]any{
		"national_id": "123", "name": "Ana", "surname": "Lopez",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestChipCodeUniqueAmongActiveRows(t *testing.T) {
	env := setupE2E(t)

	resp, _ := env.request(t, http.MethodPost, "/api/chips", map[string]any{"code": "X9"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = env.request(t, http.MethodPost, "/api/chips", map[string]any{"code": "X9"})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}
