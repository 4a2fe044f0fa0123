package msg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func loadTestCatalog(t *testing.T) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "messages.yml")
	catalog := `
gif:
  counter:
    increment-failed: "could not count read of gif {0}: {1}"
  cache:
    hit-search: "search cache hit for term {0} ({1} gifs)"
`
	assert.NoError(t, os.WriteFile(path, []byte(catalog), 0o600))
	Init(path)
}

func TestGetMessage_FormatsPlaceholders(t *testing.T) {
	loadTestCatalog(t)

	got := GetMessage("gif.cache.hit-search", "cats", 3)

	assert.Equal(t, "search cache hit for term cats (3 gifs)", got)
}

func TestGetMessage_RendersErrorText(t *testing.T) {
	loadTestCatalog(t)

	cause := fmt.Errorf("upsert failed: %w", errors.New("connection refused"))
	got := GetMessage("gif.counter.increment-failed", "abc", cause)

	assert.Equal(t, "could not count read of gif abc: upsert failed: connection refused", got)
}

func TestGetMessage_UnknownKey(t *testing.T) {
	loadTestCatalog(t)

	assert.Equal(t, "Message not found: no.such.key", GetMessage("no.such.key"))
}
