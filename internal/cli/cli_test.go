package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig creates a config without simulated latency. top holds root
// keys, local extra keys of the [local] table.
func writeConfig(t *testing.T, top, local string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	content := top + "[local]\nlatency_ms = 0\n" + local
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestQueryLocal(t *testing.T) {
	path := writeConfig(t, "", "")

	out, err := run(t, "query", "--config", path, "--provider", "local", "iphone")
	require.NoError(t, err)
	assert.Contains(t, out, "Products\n")
	assert.Contains(t, out, "iPhone 15 Pro")
	assert.Contains(t, out, "product-1")
}

func TestQueryTransliteratesHangul(t *testing.T) {
	path := writeConfig(t, "", "")

	out, err := run(t, "query", "--config", path, "--provider", "local", "--json", "아이폰")
	require.NoError(t, err)

	var result queryOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "dkdlvhs", result.Query)
	assert.Empty(t, result.Options, "the transliterated query matches nothing in the demo catalog")
}

func TestQueryJSON(t *testing.T) {
	path := writeConfig(t, "", "")

	out, err := run(t, "query", "--config", path, "--provider", "local", "--json", "smart")
	require.NoError(t, err)

	var result queryOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.NotEmpty(t, result.Options)
	assert.True(t, result.Options[0].Header)
	assert.Equal(t, "products-header", result.Options[0].Value)

	var values []string
	for _, o := range result.Options {
		values = append(values, o.Value)
	}
	assert.Contains(t, values, "categories-header")
	assert.Contains(t, values, "category-cat2")
}

func TestQueryNoResults(t *testing.T) {
	path := writeConfig(t, "", "")

	out, err := run(t, "query", "--config", path, "--provider", "local", "zzzz")
	require.NoError(t, err)
	assert.Contains(t, out, `No results for "zzzz"`)
}

func TestQueryWithoutSections(t *testing.T) {
	path := writeConfig(t, "sections = []\n", "")

	out, err := run(t, "query", "--config", path, "--provider", "local", "iphone")
	require.NoError(t, err)
	assert.Contains(t, out, "No sections provided")
}

func TestQueryRequiresText(t *testing.T) {
	_, err := run(t, "query", "--config", writeConfig(t, "", ""))
	require.Error(t, err)
}

func TestInvalidProviderFlag(t *testing.T) {
	_, err := run(t, "health", "--config", writeConfig(t, "", ""), "--provider", "carrier")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search.provider")
}

func TestHealthFallsBackToLocal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	out, err := run(t, "health", "--config", writeConfig(t, "", ""), "--api", srv.URL, "--json")
	require.NoError(t, err)

	var result healthOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.False(t, result.Available)
	assert.Equal(t, "local", result.Provider)
	assert.Equal(t, "auto", result.Mode)
}

func TestHealthUsesRemoteWhenAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	out, err := run(t, "health", "--config", writeConfig(t, "", ""), "--api", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "(ok)")
	assert.Contains(t, out, "Provider: remote")
}

func TestShowPages(t *testing.T) {
	path := writeConfig(t, "", "")

	out, err := run(t, "show", "--config", path, "--provider", "local", "product", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "iPhone 15 Pro")

	out, err = run(t, "show", "--config", path, "--provider", "local", "category", "cat2")
	require.NoError(t, err)
	assert.Contains(t, out, "Smartphones")

	out, err = run(t, "show", "--config", path, "--provider", "local", "product", "999")
	require.NoError(t, err)
	assert.Contains(t, out, "not found")
}

func TestShowFromSQLiteCatalog(t *testing.T) {
	db := filepath.Join(t.TempDir(), "catalog.db")
	path := writeConfig(t, "", "database = \""+filepath.ToSlash(db)+"\"\n")

	out, err := run(t, "show", "--config", path, "--provider", "local", "product", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "MacBook Pro M3")

	_, err = os.Stat(db)
	require.NoError(t, err)
}
