package configs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionDBSerializesSqliteWrites(t *testing.T) {
	cfg := &Config{
		DBDriver: "sqlite",
		DBSource: filepath.Join(t.TempDir(), "conn.db"),
	}
	require.NoError(t, ConnectionDB(cfg))

	sqlDB, err := DB().DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestConnectionDBRejectsUnknownDriver(t *testing.T) {
	cfg := &Config{DBDriver: "oracle", DBSource: "dsn"}
	assert.Error(t, ConnectionDB(cfg))
}
