package cart

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStorage struct {
	Storage
	failSave bool
	failLoad bool
}

var errStore = errors.New("store offline")

func (s *failingStorage) Load(ctx context.Context, key string) ([]byte, error) {
	if s.failLoad {
		return nil, errStore
	}
	return s.Storage.Load(ctx, key)
}

func (s *failingStorage) Save(ctx context.Context, key string, data []byte) error {
	if s.failSave {
		return errStore
	}
	return s.Storage.Save(ctx, key, data)
}

func storages(t *testing.T) map[string]Storage {
	fs, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return map[string]Storage{
		"memory": NewMemoryStorage(),
		"file":   fs,
	}
}

func TestManager_PersistsEveryMutation(t *testing.T) {
	ctx := context.Background()
	for name, store := range storages(t) {
		t.Run(name, func(t *testing.T) {
			m := NewManager(store)

			s, err := m.Open(ctx, "cart-1")
			require.NoError(t, err)
			assert.True(t, s.IsEmpty())

			require.NoError(t, s.Add(ctx, carrots(1)))
			require.NoError(t, s.Add(ctx, carrots(2)))
			require.NoError(t, s.Add(ctx, honey(1)))
			require.NoError(t, s.SetQuantity(ctx, "honey", 0))

			reopened, err := m.Open(ctx, "cart-1")
			require.NoError(t, err)
			lines := reopened.Lines()
			require.Len(t, lines, 2)
			assert.Equal(t, 3, lines[0].Quantity)
			assert.Equal(t, 1, lines[1].Quantity)

			require.NoError(t, reopened.Remove(ctx, "carrots"))
			again, err := m.Open(ctx, "cart-1")
			require.NoError(t, err)
			assert.Equal(t, 1, len(again.Lines()))

			require.NoError(t, again.Clear(ctx))
			cleared, err := m.Open(ctx, "cart-1")
			require.NoError(t, err)
			assert.True(t, cleared.IsEmpty())

			other, err := m.Open(ctx, "cart-2")
			require.NoError(t, err)
			assert.True(t, other.IsEmpty())
		})
	}
}

func TestManager_CorruptSnapshotYieldsEmptyCart(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	require.NoError(t, store.Save(ctx, "cart-1", []byte(`{"broken":`)))

	s, err := NewManager(store).Open(ctx, "cart-1")
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())

	require.NoError(t, s.Add(ctx, honey(2)))
	data, err := store.Load(ctx, "cart-1")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"quantity":2`)
}

func TestManager_StoreFailures(t *testing.T) {
	ctx := context.Background()
	store := &failingStorage{Storage: NewMemoryStorage()}
	m := NewManager(store)

	s, err := m.Open(ctx, "cart-1")
	require.NoError(t, err)
	require.NoError(t, s.Add(ctx, carrots(1)))

	store.failSave = true
	err = s.Add(ctx, carrots(5))
	assert.ErrorIs(t, err, ErrUnavailable)
	line, _ := s.cart.Find("carrots")
	assert.Equal(t, 1, line.Quantity)

	assert.ErrorIs(t, s.Add(ctx, carrots(0)), ErrInvalidQuantity)

	store.failLoad = true
	_, err = m.Open(ctx, "cart-1")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestFileStorage_MissingKeyAndDelete(t *testing.T) {
	ctx := context.Background()
	fs, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	data, err := fs.Load(ctx, "session:../../etc/passwd")
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, fs.Save(ctx, "session:../../etc/passwd", []byte("[]")))
	entries, err := os.ReadDir(fs.Dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, fs.Delete(ctx, "session:../../etc/passwd"))
	require.NoError(t, fs.Delete(ctx, "session:../../etc/passwd"))
}

func TestRedisStorage(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR is required for tests")
	}
	ctx := context.Background()
	store := NewRedisStorage(addr, "farmconnect:test:")
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Ping(ctx))

	s, err := NewManager(store).Open(ctx, "cart-redis")
	require.NoError(t, err)
	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Add(ctx, carrots(2)))

	data, err := store.Client.Get(ctx, "farmconnect:test:cart-redis").Bytes()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"carrots"`)

	require.NoError(t, s.Clear(ctx))
	data, err = store.Load(ctx, "cart-redis")
	require.NoError(t, err)
	assert.Nil(t, data)
}
