package product

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *MemoryRepository) {
	t.Helper()
	repo := NewMemoryRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(logger, NewService(repo))

	r := chi.NewRouter()
	r.Route("/api/v1", handler.MountRoutes)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, repo
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeProduct(t *testing.T, resp *http.Response) ProductResponse {
	t.Helper()
	defer resp.Body.Close()
	var out ProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func ronPayload() map[string]any {
	return map[string]any{
		"sku":            "ron001",
		"name":           "Ron X",
		"category":       "Ron",
		"packaging":      "Botella 750ml",
		"supplier":       "Licores Nacionales S.A.",
		"purchase_price": 45000,
		"sale_price":     65000,
		"stock":          100,
	}
}

func TestHandlerCreate(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/products", ronPayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeProduct(t, resp)
	require.Equal(t, int64(1), created.ID)
	require.Equal(t, "RON001", created.SKU, "sku uppercased at the boundary")
	require.Equal(t, "Active", created.Status)
}

func TestHandlerCreateDuplicate(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/products", ronPayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/products", ronPayload())
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestHandlerCreateValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	cases := []struct {
		name  string
		patch func(map[string]any)
	}{
		{"missing sku", func(m map[string]any) { delete(m, "sku") }},
		{"sku with space", func(m map[string]any) { m["sku"] = "RON 001" }},
		{"zero price", func(m map[string]any) { m["purchase_price"] = 0 }},
		{"negative stock", func(m map[string]any) { m["stock"] = -5 }},
		{"empty name", func(m map[string]any) { m["name"] = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := ronPayload()
			tc.patch(payload)
			resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/products", payload)
			require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
			resp.Body.Close()
		})
	}
}

func TestHandlerUpdate(t *testing.T) {
	srv, repo := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/products", ronPayload())
	created := decodeProduct(t, resp)

	resp = doJSON(t, http.MethodPatch, srv.URL+"/api/v1/products/1", map[string]any{"stock": 150})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeProduct(t, resp)
	require.Equal(t, 150, updated.Stock)
	require.Equal(t, created.SalePrice, updated.SalePrice)

	// Violations must not reach the store.
	resp = doJSON(t, http.MethodPatch, srv.URL+"/api/v1/products/1", map[string]any{"stock": -1})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()

	stored, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, 150, stored.Stock)
}

func TestHandlerUpdateNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPatch, srv.URL+"/api/v1/products/99", map[string]any{"stock": 1})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPatch, srv.URL+"/api/v1/products/abc", map[string]any{"stock": 1})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestHandlerListAndGet(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/products", ronPayload())
	resp.Body.Close()

	resp, err := http.Get(srv.URL + "/api/v1/inventory")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []ProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	resp.Body.Close()
	require.Len(t, list, 1)

	resp = doJSON(t, http.MethodPatch, srv.URL+"/api/v1/products/1", map[string]any{"status": "Inactive"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/api/v1/inventory?active=true")
	require.NoError(t, err)
	list = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	resp.Body.Close()
	require.Empty(t, list)

	resp, err = http.Get(srv.URL + "/api/v1/products/sku/ron001")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/api/v1/products/2")
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
