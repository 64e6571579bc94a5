package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{Enabled: true, Threshold: 600, Timeout: 5 * time.Second}
}

func TestFetchContent_ExtractsArticleText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := `<!DOCTYPE html>
<html><head><title>Gold analysis</title></head><body>
<article>
<h1>Gold analysis</h1>
<p>Gold extended its rally for a fourth session on central bank buying.</p>
<p>Analysts pointed to falling real yields as the main driver behind the move higher.</p>
<p>Retail demand for coins and small bars also remained firm through the quarter.</p>
</article>
</body></html>`
		if _, err := w.Write([]byte(page)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	f := NewReadabilityFetcher(testConfig())
	got, err := f.FetchContent(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Contains(t, got, "central bank buying")
	assert.Contains(t, got, "falling real yields")
}

func TestFetchContent_HTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	f := NewReadabilityFetcher(testConfig())
	_, err := f.FetchContent(context.Background(), server.URL)
	assert.Error(t, err)
}

func TestFetchContent_RejectsNonHTTPScheme(t *testing.T) {
	f := NewReadabilityFetcher(testConfig())
	_, err := f.FetchContent(context.Background(), "file:///etc/passwd")
	assert.Error(t, err)
}

func TestFetchContent_EmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("<html><body></body></html>")); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	f := NewReadabilityFetcher(testConfig())
	_, err := f.FetchContent(context.Background(), server.URL)
	assert.Error(t, err)
}

func TestExtractParagraphs_JoinsText(t *testing.T) {
	body := []byte("<html><body><p>First.</p><div><p> Second. </p></div><p></p></body></html>")
	got, err := extractParagraphs(body)
	require.NoError(t, err)
	assert.Equal(t, "First.\n\nSecond.", got)
	assert.Equal(t, 2, strings.Count(got, "."))
}

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("CONTENT_FETCH_ENABLED", "")
	t.Setenv("CONTENT_FETCH_THRESHOLD", "")
	t.Setenv("CONTENT_FETCH_TIMEOUT", "")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 600, cfg.Threshold)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}
