package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-service/config"
)

func TestOpenCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	db, err := Open(context.Background(), config.SQLiteConfig{Path: path})
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE t (x INTEGER)`)
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
