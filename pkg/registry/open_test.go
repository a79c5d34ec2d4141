package registry

import (
	"os"
	"path/filepath"
	"testing"

	"cardgames/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_file(t *testing.T) {
	a := assert.New(t)
	cfg := config.DefaultConfig()
	cfg.Registry.File = filepath.Join(t.TempDir(), "users.yaml")

	store, save, err := Open(cfg)
	require.NoError(t, err)
	a.IsType(&Registry{}, store)
	a.NoError(store.AddUser("Daniel"))
	a.NoError(save())

	store, _, err = Open(cfg)
	require.NoError(t, err)
	u, err := store.User("Daniel")
	a.NoError(err)
	a.Equal("Daniel", u.Username)
}

func TestOpen_unknownDriver(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Registry.Driver = "mongo"

	_, _, err := Open(cfg)
	assert.EqualError(t, err, "unknown registry driver: mongo")
}

func TestOpenReadOnly_file(t *testing.T) {
	a := assert.New(t)
	cfg := config.DefaultConfig()
	dir := t.TempDir()
	cfg.Registry.File = filepath.Join(dir, "users.yaml")

	store, closeStore, err := OpenReadOnly(cfg)
	require.NoError(t, err)
	a.NoError(store.AddUser("Daniel"))
	a.NoError(closeStore())

	entries, err := os.ReadDir(dir)
	a.NoError(err)
	a.Empty(entries, "nothing is written back")
}

func TestOpenReadOnly_postgres(t *testing.T) {
	dsn := os.Getenv("CG_TEST_PG_DSN")
	if dsn == "" {
		t.Skip("CG_TEST_PG_DSN is not set")
	}

	cfg := config.DefaultConfig()
	cfg.Registry.Driver = config.DriverPostgres
	cfg.Registry.PGDSN = dsn
	cfg.Registry.MigrationsPath = filepath.Join(t.TempDir(), "missing")

	// migrating from a missing directory fails, so only the read-only open can succeed
	_, _, err := Open(cfg)
	assert.Error(t, err)

	store, closeStore, err := OpenReadOnly(cfg)
	require.NoError(t, err)
	assert.IsType(t, &Postgres{}, store)
	assert.NoError(t, closeStore())
}
