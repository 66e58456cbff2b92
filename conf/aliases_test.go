package conf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gemarathon/backend/conf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAliasTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.toml")
	content := `[aliases]
"י2" = "יא 2"
"שמיניסטים" = "כיתה ח1"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	aliases, err := conf.ReadAliasTable(path)
	require.NoError(t, err)
	assert.Equal(t, "יא 2", aliases["י2"])
	assert.Equal(t, "כיתה ח1", aliases["שמיניסטים"])
}

func TestReadAliasTableEmptyPath(t *testing.T) {
	aliases, err := conf.ReadAliasTable("")
	require.NoError(t, err)
	assert.Empty(t, aliases)
}

func TestReadAliasTableMissingFile(t *testing.T) {
	_, err := conf.ReadAliasTable("/does/not/exist.toml")
	assert.Error(t, err)
}
