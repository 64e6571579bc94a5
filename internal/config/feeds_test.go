package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFeedsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feeds.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFeeds(t *testing.T) {
	path := writeFeedsFile(t, `feeds:
  - name: Kitco News
    url: https://www.kitco.com/rss/category/commentaries.xml
  - name: Mining.com
    url: https://www.mining.com/feed/
`)

	feeds, err := LoadFeeds(path)
	require.NoError(t, err)
	require.Len(t, feeds, 2)
	assert.Equal(t, "Kitco News", feeds[0].Name)
	assert.Equal(t, "https://www.mining.com/feed/", feeds[1].URL)
}

func TestLoadFeeds_MissingFile(t *testing.T) {
	_, err := LoadFeeds(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadFeeds_InvalidYAML(t *testing.T) {
	path := writeFeedsFile(t, "feeds: [name: {")
	_, err := LoadFeeds(path)
	assert.Error(t, err)
}

func TestLoadFeeds_EmptyList(t *testing.T) {
	path := writeFeedsFile(t, "feeds: []")
	_, err := LoadFeeds(path)
	assert.Error(t, err)
}

func TestLoadFeeds_EntryMissingName(t *testing.T) {
	path := writeFeedsFile(t, `feeds:
  - url: https://example.com/rss
`)
	_, err := LoadFeeds(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing a name")
}

func TestLoadFeeds_EntryMissingURL(t *testing.T) {
	path := writeFeedsFile(t, `feeds:
  - name: Example Wire
`)
	_, err := LoadFeeds(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing a url")
}
