// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/brandcraft/internal/catalog"
	"github.com/pdiddy/brandcraft/internal/entropy"
	"github.com/pdiddy/brandcraft/internal/httputil"
	"github.com/pdiddy/brandcraft/internal/studio"
	"github.com/pdiddy/brandcraft/pkg/types"
)

func newTestServer(t *testing.T, cfg types.ServerConfig, cat *catalog.Catalog) *Server {
	t.Helper()
	if cat == nil {
		cat = catalog.Default()
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = t.TempDir()
	}
	st := studio.New(cat, entropy.NewSeeded(3), types.NamesConfig{}, nil)
	return New(cfg, st, nil)
}

func do(t *testing.T, s *Server, method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func composedFrom(name string, table types.NameTable) bool {
	for _, p := range table.Prefixes {
		for _, s := range table.Suffixes {
			if p+s == name {
				return true
			}
		}
	}
	return false
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, types.ServerConfig{APIKey: "secret"}, nil)
	rec := do(t, s, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestBrandNames(t *testing.T) {
	s := newTestServer(t, types.ServerConfig{}, nil)
	cat := catalog.Default()

	tests := []struct {
		name  string
		body  string
		table types.CategoryKey
	}{
		{"known category", `{"business_type":"cafe","product_category":"Food","target_audience":"students"}`, "food"},
		{"unknown category", `{"product_category":"electronics"}`, "default"},
		{"empty category", `{"business_type":"shop"}`, "default"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/generate-brand-names-local", tt.body, nil)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			resp := decode[brandNamesResponse](t, rec)
			require.Len(t, resp.BrandNames, 12)
			seen := make(map[string]bool)
			for _, n := range resp.BrandNames {
				assert.False(t, seen[n], "duplicate %q", n)
				seen[n] = true
				assert.True(t, composedFrom(n, cat.NameTable(tt.table)), "%q not from %s table", n, tt.table)
			}
		})
	}
}

func TestBrandNamesBadRequests(t *testing.T) {
	s := newTestServer(t, types.ServerConfig{}, nil)

	tests := []struct {
		name string
		body string
		msg  string
	}{
		{"malformed json", `{"product_category":`, "invalid request"},
		{"unknown field", `{"category":"food"}`, "unknown field"},
		{"category too long", `{"product_category":"` + strings.Repeat("x", 65) + `"}`, "product_category must be at most 64 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/generate-brand-names-local", tt.body, map[string]string{RequestIDHeader: "abc-1"})
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decode[httputil.ErrorResponse](t, rec)
			assert.Contains(t, body.Error, tt.msg)
			assert.Equal(t, "abc-1", body.RequestID)
		})
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate-brand-names-local", nil)
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBrandNamesInsufficientCombinations(t *testing.T) {
	tables := catalog.Default().Tables()
	tables.Names["tiny"] = types.NameTable{Prefixes: []string{"A", "B"}, Suffixes: []string{"x", "y"}}
	cat, err := catalog.New(tables)
	require.NoError(t, err)

	s := newTestServer(t, types.ServerConfig{}, cat)
	rec := do(t, s, http.MethodPost, "/generate-brand-names-local", `{"product_category":"tiny"}`, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decode[httputil.ErrorResponse](t, rec).Error, "4 distinct names available")
}

func TestLogoFromQuery(t *testing.T) {
	s := newTestServer(t, types.ServerConfig{}, nil)
	q := url.Values{
		"brand_name":    {"A&B<C>"},
		"primary_color": {"#0277BD"},
		"style":         {"hexagon"},
	}
	rec := do(t, s, http.MethodPost, "/generate-logo-svg?"+q.Encode(), "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	logo := decode[types.Logo](t, rec)
	assert.Contains(t, logo.Markup, "A&amp;B&lt;C&gt;")
	assert.Contains(t, logo.Markup, `<circle cx="40" cy="40" r="30" fill="#0277BD"/>`)
	assert.Equal(t, types.ShapeStyle("hexagon"), logo.Style)
	assert.Equal(t, types.DefaultCategory, logo.Category)
}

func TestLogoFromJSONBody(t *testing.T) {
	s := newTestServer(t, types.ServerConfig{}, nil)
	rec := do(t, s, http.MethodPost, "/generate-logo-svg",
		`{"brand_name":"Urban Mode","primary_color":"#fff","category":"Fashion","style":"badge"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	logo := decode[types.Logo](t, rec)
	assert.Contains(t, logo.Markup, `rx="12"`)
	assert.Contains(t, logo.Markup, `font-family="serif"`)
	assert.Contains(t, logo.Markup, `fill="#000000">Urban Mode</text>`)
	assert.Equal(t, types.CategoryKey("fashion"), logo.Category)
}

func TestLogoRequiresName(t *testing.T) {
	s := newTestServer(t, types.ServerConfig{}, nil)

	rec := do(t, s, http.MethodPost, "/generate-logo-svg?style=square", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[httputil.ErrorResponse](t, rec).Error, "brand_name is required")

	rec = do(t, s, http.MethodPost, "/generate-logo-svg", `{"brand_name":"`+strings.Repeat("n", 81)+`"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPalette(t *testing.T) {
	s := newTestServer(t, types.ServerConfig{}, nil)
	var valid [][3]types.ColorHex
	for _, p := range catalog.Default().Palettes() {
		valid = append(valid, p.Colors())
	}

	for i := 0; i < 10; i++ {
		rec := do(t, s, http.MethodPost, "/generate-color-palette", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, valid, decode[paletteResponse](t, rec).Colors)
	}
}

func TestContrast(t *testing.T) {
	s := newTestServer(t, types.ServerConfig{}, nil)
	tests := map[string]types.ColorHex{
		"%23000000": types.TextLight,
		"%23fff":    types.TextDark,
		"bad-input": types.TextDark,
		"":          types.TextDark,
	}
	for in, want := range tests {
		rec := do(t, s, http.MethodGet, "/contrast?color="+in, "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, want, decode[contrastResponse](t, rec).TextColor, in)
	}
}

func TestAPIKey(t *testing.T) {
	s := newTestServer(t, types.ServerConfig{APIKey: "s3cret"}, nil)

	rec := do(t, s, http.MethodPost, "/generate-color-palette", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))

	rec = do(t, s, http.MethodPost, "/generate-color-palette", "", map[string]string{"Authorization": "Bearer wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, s, http.MethodPost, "/generate-color-palette", "", map[string]string{"Authorization": "Bearer s3cret"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, s, http.MethodPost, "/generate-color-palette", "", map[string]string{"Authorization": "bearer s3cret"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, s, http.MethodPost, "/generate-color-palette", "", map[string]string{"Authorization": "s3cret"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t, types.ServerConfig{}, nil)

	rec := do(t, s, http.MethodGet, "/healthz", "", map[string]string{RequestIDHeader: "trace-42"})
	assert.Equal(t, "trace-42", rec.Header().Get(RequestIDHeader))

	rec = do(t, s, http.MethodGet, "/healthz", "", nil)
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)

	rec = do(t, s, http.MethodGet, "/healthz", "", map[string]string{RequestIDHeader: strings.Repeat("x", 200)})
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
}

func TestRequestLogging(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	st := studio.New(catalog.Default(), entropy.Global(), types.NamesConfig{}, nil)
	s := New(types.ServerConfig{StaticDir: t.TempDir()}, st, zap.New(core))

	do(t, s, http.MethodPost, "/generate-color-palette", "", map[string]string{RequestIDHeader: "log-1"})

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/generate-color-palette", fields["route"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.Equal(t, "log-1", fields["request_id"])
}

func TestStaticAndIndex(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>brandcraft</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))
	s := newTestServer(t, types.ServerConfig{StaticDir: dir}, nil)

	rec := do(t, s, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<h1>brandcraft</h1>")

	rec = do(t, s, http.MethodGet, "/static/app.js", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "console.log(1)", rec.Body.String())

	empty := newTestServer(t, types.ServerConfig{}, nil)
	rec = do(t, empty, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFrontEndNotServedWithAPIKey(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>brandcraft</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))
	s := newTestServer(t, types.ServerConfig{StaticDir: dir, APIKey: "s3cret"}, nil)

	rec := do(t, s, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, rec.Body.String(), "brandcraft</h1>")

	rec = do(t, s, http.MethodGet, "/static/app.js", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, s, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	s := newTestServer(t, types.ServerConfig{ShutdownTimeout: time.Second}, nil)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(ErrValidation))
	assert.Equal(t, http.StatusUnauthorized, statusFor(ErrUnauthorized))
	assert.Equal(t, http.StatusInternalServerError, statusFor(io.ErrUnexpectedEOF))
}
