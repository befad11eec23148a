package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/abacus"
	httpAdapter "github.com/aretw0/abacus/internal/adapters/http"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	handler := httpAdapter.NewHandler(abacus.New(), nil)
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string, out any) int {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

func TestFromRomanEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var resp httpAdapter.ConversionResponse
	status := get(t, srv.URL+"/api/roman/MCMXCIV", &resp)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "1994", resp.Output)
}

func TestToRomanEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var resp httpAdapter.ConversionResponse
	status := get(t, srv.URL+"/api/arabic/1994", &resp)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "MCMXCIV", resp.Output)
}

func TestConvertEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var resp httpAdapter.ConversionResponse
	status := get(t, srv.URL+"/api/convert?input=xiv", &resp)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "14", resp.Output)
	assert.Equal(t, "from_roman", resp.Direction)
}

func TestBadInputsReturn400(t *testing.T) {
	srv := newTestServer(t)

	cases := []string{
		"/api/roman/IIII",       // non-canonical
		"/api/roman/abc",        // illegal characters
		"/api/arabic/0",         // out of range
		"/api/arabic/4001",      // out of range
		"/api/arabic/xyz",       // not an integer
		"/api/convert?input=1a", // unclassifiable
		"/api/pascal/-1",        // negative row
		"/api/pascal/4?m=9",     // index out of range
	}

	for _, path := range cases {
		var resp map[string]string
		status := get(t, srv.URL+path, &resp)
		assert.Equal(t, http.StatusBadRequest, status, path)
		assert.NotEmpty(t, resp["error"], path)
	}
}

func TestPascalEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var resp httpAdapter.PascalResponse
	status := get(t, srv.URL+"/api/pascal/5", &resp)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []int{1, 5, 10, 10, 5, 1}, resp.Values)

	status = get(t, srv.URL+"/api/pascal/5?m=2", &resp)
	assert.Equal(t, http.StatusOK, status)
	require.NotNil(t, resp.Element)
	assert.Equal(t, 10, *resp.Element)
}

func TestFiguresEndpoint(t *testing.T) {
	srv := newTestServer(t)

	body := `{"args": ["o", "1", "c", "2", "2", "2", "2", "90"]}`
	resp, err := http.Post(srv.URL+"/api/figures", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var figs []httpAdapter.FigureResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&figs))
	require.Len(t, figs, 2)

	assert.Equal(t, "circle", figs[0].Name)
	assert.InDelta(t, 3.1415, figs[0].Area, 1e-9)
	assert.Equal(t, "square", figs[1].Name)
	assert.InDelta(t, 4.0, figs[1].Area, 1e-9)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	var resp map[string]string
	status := get(t, srv.URL+"/healthz", &resp)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", resp["status"])
}
