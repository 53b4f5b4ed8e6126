package http_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	gohttp "github.com/km-arc/go-laravel-bridge/framework/http"
)

func TestRequest_InputAndQuery(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/items?page=3&q=", nil)
	req := gohttp.NewRequest(r)

	require.Equal(t, "3", req.Query("page"))
	require.Equal(t, "3", req.Input("page"))
	require.Equal(t, "1", req.Query("missing", "1"))
	require.True(t, req.Has("page"))
	require.False(t, req.Has("q"))
}

func TestRequest_Metadata(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("POST", "/api/users", nil)
	r.Header.Set("Authorization", "Bearer tok123")
	r.Header.Set("Accept", "application/json")
	req := gohttp.NewRequest(r)

	require.Equal(t, "POST", req.Method())
	require.Equal(t, "/api/users", req.Path())
	require.Equal(t, "tok123", req.BearerToken())
	require.True(t, req.IsJSON())
}

func TestCapture_PlaceholderRequest(t *testing.T) {
	t.Parallel()

	req := gohttp.Capture()

	require.Equal(t, "GET", req.Method())
	require.Equal(t, "/", req.Path())
	require.Equal(t, "", req.Query("page"))
}
