package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBackends(t *testing.T) {
	mr := miniredis.RunT(t)
	dir := t.TempDir()

	configs := map[string]*OpenConfig{
		BackendFile:   {Backend: BackendFile, FilePath: filepath.Join(dir, "dados.json")},
		BackendRedis:  {Backend: BackendRedis, RedisAddr: mr.Addr(), RedisKey: "test:store"},
		BackendSQLite: {Backend: BackendSQLite, SQLitePath: filepath.Join(dir, "matchqueue.db")},
	}

	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			repo, closeFn, err := Open(cfg)
			require.NoError(t, err)
			require.NotNil(t, closeFn)

			ctx := context.Background()
			require.NoError(t, repo.Save(ctx, &SaveInput{Store: sampleStore()}))

			loaded, err := repo.Load(ctx)
			require.NoError(t, err)
			assert.Len(t, loaded.Panels, len(sampleStore().Panels))

			assert.NoError(t, closeFn())
		})
	}

	assert.True(t, mr.Exists("test:store"))
}

func TestOpenErrors(t *testing.T) {
	_, closeFn, err := Open(nil)
	assert.Error(t, err)
	assert.NoError(t, closeFn())

	_, _, err = Open(&OpenConfig{Backend: "postgres"})
	assert.ErrorIs(t, err, ErrUnknownBackend)

	_, _, err = Open(&OpenConfig{Backend: BackendRedis, RedisAddr: "127.0.0.1:1"})
	assert.Error(t, err)
}
