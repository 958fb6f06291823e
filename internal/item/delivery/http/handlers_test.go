package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-service/internal/item"
	"catalog-service/internal/item/repository/memory"
	"catalog-service/internal/item/usecase"
	"catalog-service/internal/middleware"
	"catalog-service/pkg/log"
	"catalog-service/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type wireItem struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Price   float64   `json:"price"`
	Created time.Time `json:"created"`
}

func newTestServer(uc item.UseCase) *gin.Engine {
	r := gin.New()
	RegisterRoutes(&r.RouterGroup, New(log.NewNop(), uc), middleware.New(log.NewNop(), 0))
	return r
}

func newCatalog() *gin.Engine {
	repo := memory.New(log.NewNop())
	return newTestServer(usecase.New(repo, nil, log.NewNop()))
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, buf)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func create(t *testing.T, r http.Handler, name string, price string) wireItem {
	t.Helper()
	w := do(r, http.MethodPost, "/items", `{"name":"`+name+`","price":`+price+`}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var it wireItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &it))
	return it
}

func TestPotionScenario(t *testing.T) {
	r := newCatalog()

	w := do(r, http.MethodPost, "/items", `{"name":"Potion","price":9.99}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `"Potion"`, mustField(t, w.Body.Bytes(), "name"))
	assert.JSONEq(t, `9.99`, mustField(t, w.Body.Bytes(), "price"))

	var created wireItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	_, err := uuid.Parse(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "/items/"+created.ID, w.Header().Get("Location"))
	assert.WithinDuration(t, time.Now(), created.Created, time.Minute)

	w = do(r, http.MethodGet, "/items/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got wireItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Potion", got.Name)
	assert.Equal(t, 9.99, got.Price)
	assert.True(t, created.Created.Equal(got.Created))
}

func TestUpdate(t *testing.T) {
	r := newCatalog()
	potion := create(t, r, "Potion", "9.99")

	w := do(r, http.MethodPut, "/items/"+potion.ID, `{"name":"Hi-Potion","price":19.5}`)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(r, http.MethodGet, "/items/"+potion.ID, "")
	var got wireItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, potion.ID, got.ID)
	assert.Equal(t, "Hi-Potion", got.Name)
	assert.Equal(t, 19.5, got.Price)
	assert.True(t, potion.Created.Equal(got.Created))

	w = do(r, http.MethodPut, "/items/"+uuid.NewString(), `{"name":"Ghost","price":1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDeleteTwice(t *testing.T) {
	r := newCatalog()
	potion := create(t, r, "Potion", "9.99")

	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/items/"+potion.ID, "").Code)

	w := do(r, http.MethodDelete, "/items/"+potion.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(r, http.MethodGet, "/items/"+potion.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestList(t *testing.T) {
	r := newCatalog()

	w := do(r, http.MethodGet, "/items", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	create(t, r, "Potion", "9.99")
	create(t, r, "Elixir", "15")

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "all", query: "", want: []string{"Potion", "Elixir"}},
		{name: "blank filter", query: "?nameToMatch=%20%20", want: []string{"Potion", "Elixir"}},
		{name: "pot", query: "?nameToMatch=pot", want: []string{"Potion"}},
		{name: "upper case", query: "?nameToMatch=ELIX", want: []string{"Elixir"}},
		{name: "no match", query: "?nameToMatch=sword", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodGet, "/items"+tt.query, "")
			require.Equal(t, http.StatusOK, w.Code)
			var items []wireItem
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
			require.NotNil(t, items)
			names := make([]string, len(items))
			for i, it := range items {
				names[i] = it.Name
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestBadRequests(t *testing.T) {
	r := newCatalog()
	potion := create(t, r, "Potion", "9.99")

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantFields []string
	}{
		{name: "get malformed id", method: http.MethodGet, path: "/items/not-a-uuid"},
		{name: "delete malformed id", method: http.MethodDelete, path: "/items/42"},
		{name: "update malformed id", method: http.MethodPut, path: "/items/42", body: `{"name":"x","price":1}`},
		{name: "invalid json", method: http.MethodPost, path: "/items", body: `{"name":`},
		{name: "price not a number", method: http.MethodPost, path: "/items", body: `{"name":"x","price":"cheap"}`},
		{name: "missing fields", method: http.MethodPost, path: "/items", body: `{}`, wantFields: []string{"name", "price"}},
		{name: "blank name", method: http.MethodPost, path: "/items", body: `{"name":"   ","price":1}`, wantFields: []string{"name"}},
		{name: "negative price", method: http.MethodPost, path: "/items", body: `{"name":"x","price":-0.01}`, wantFields: []string{"price"}},
		{name: "update negative price", method: http.MethodPut, path: "/items/" + potion.ID, body: `{"name":"x","price":-1}`, wantFields: []string{"price"}},
		{name: "tiny negative price", method: http.MethodPost, path: "/items", body: `{"name":"x","price":-1e-400}`, wantFields: []string{"price"}},
		{name: "too many decimal places", method: http.MethodPost, path: "/items", body: `{"name":"x","price":9.999}`, wantFields: []string{"price"}},
		{name: "price too large", method: http.MethodPost, path: "/items", body: `{"name":"x","price":1e10}`, wantFields: []string{"price"}},
		{name: "update too many decimal places", method: http.MethodPut, path: "/items/" + potion.ID, body: `{"name":"x","price":0.001}`, wantFields: []string{"price"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, tt.method, tt.path, tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

			var resp struct {
				ErrorCode int               `json:"error_code"`
				Message   string            `json:"message"`
				Errors    map[string]string `json:"errors"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, http.StatusBadRequest, resp.ErrorCode)
			for _, f := range tt.wantFields {
				assert.Contains(t, resp.Errors, f)
			}
		})
	}

	t.Run("zero price is allowed", func(t *testing.T) {
		w := do(r, http.MethodPost, "/items", `{"name":"Water","price":0}`)
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})
}

func TestPriceRoundTrip(t *testing.T) {
	r := newCatalog()

	for _, price := range []string{"0", "0.5", "9.99", "9999999999.99", "1e2"} {
		t.Run(price, func(t *testing.T) {
			w := do(r, http.MethodPost, "/items", `{"name":"Potion","price":`+price+`}`)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
			sent := mustField(t, w.Body.Bytes(), "price")

			w = do(r, http.MethodGet, w.Header().Get("Location"), "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, sent, mustField(t, w.Body.Bytes(), "price"))
		})
	}

	w := do(r, http.MethodPost, "/items", `{"name":"x","price":-1e-400}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "must not be negative", resp.Errors["price"])

	w = do(r, http.MethodGet, "/items", "")
	var items []wireItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 5)
}

// brokenUseCase fails every call with err.
type brokenUseCase struct {
	err error
}

func (b brokenUseCase) Create(context.Context, item.CreateItemInput) (item.CreateItemOutput, error) {
	return item.CreateItemOutput{}, b.err
}
func (b brokenUseCase) List(context.Context, item.ListItemsInput) (item.ListItemsOutput, error) {
	return item.ListItemsOutput{}, b.err
}
func (b brokenUseCase) Detail(context.Context, uuid.UUID) (item.DetailItemOutput, error) {
	return item.DetailItemOutput{}, b.err
}
func (b brokenUseCase) Update(context.Context, item.UpdateItemInput) (item.UpdateItemOutput, error) {
	return item.UpdateItemOutput{}, b.err
}
func (b brokenUseCase) Delete(context.Context, uuid.UUID) error { return b.err }

func TestStoreFailures(t *testing.T) {
	r := newTestServer(brokenUseCase{err: errors.New("connection reset")})
	id := uuid.NewString()

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodGet, "/items", ""},
		{http.MethodGet, "/items/" + id, ""},
		{http.MethodPost, "/items", `{"name":"x","price":1}`},
		{http.MethodPut, "/items/" + id, `{"name":"x","price":1}`},
		{http.MethodDelete, "/items/" + id, ""},
	} {
		w := do(r, tc.method, tc.path, tc.body)
		require.Equal(t, http.StatusInternalServerError, w.Code, "%s %s", tc.method, tc.path)
		var resp response.Resp
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, response.DefaultErrorMessage, resp.Message)
	}

	r = newTestServer(brokenUseCase{err: item.ErrDuplicateID})
	w := do(r, http.MethodPost, "/items", `{"name":"x","price":1}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func mustField(t *testing.T, body []byte, field string) string {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &m))
	raw, ok := m[field]
	require.True(t, ok, "missing field %s", field)
	return string(raw)
}
