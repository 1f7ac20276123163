package hexforge_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexforge"
	"github.com/katalvlaran/hexforge/server"
)

func TestGenerateFunction(t *testing.T) {
	t.Setenv("HEXFORGE_SAMPLE", "testdata/test.txt")

	rec := httptest.NewRecorder()
	hexforge.Generate(rec, httptest.NewRequest(http.MethodGet, "/?seed=AAEPWOIF", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body server.GenerateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "Hexagonal(8)", body.Layout)
	require.Equal(t, "AAEPWOIF", body.Seed.String())
}
