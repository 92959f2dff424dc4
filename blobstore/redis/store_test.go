package redis

import (
	"context"
	"errors"
	"path"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/mr-c/raptor/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient is an in-memory Client built on go-redis result constructors.
type fakeClient struct {
	mu      sync.Mutex
	data    map[string]string
	ttls    map[string]time.Duration
	pageLen int
	failGet error
}

func newFakeClient() *fakeClient {
	return &fakeClient{data: map[string]string{}, ttls: map[string]time.Duration{}, pageLen: 1}
}

func (f *fakeClient) Get(_ context.Context, key string) *goredis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet != nil {
		return goredis.NewStringResult("", f.failGet)
	}
	v, ok := f.data[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}
	return goredis.NewStringResult(v, nil)
}

func (f *fakeClient) SetNX(_ context.Context, key string, value interface{}, ttl time.Duration) *goredis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.data[key]; ok {
		return goredis.NewBoolResult(false, nil)
	}
	f.data[key] = string(value.([]byte))
	f.ttls[key] = ttl
	return goredis.NewBoolResult(true, nil)
}

func (f *fakeClient) Del(_ context.Context, keys ...string) *goredis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return goredis.NewIntResult(n, nil)
}

// Scan returns pageLen keys per call, in sorted order, using the cursor as an offset.
func (f *fakeClient) Scan(_ context.Context, cursor uint64, match string, _ int64) *goredis.ScanCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	var all []string
	for k := range f.data {
		if ok, _ := path.Match(match, k); ok {
			all = append(all, k)
		}
	}
	slices.Sort(all)

	start := min(int(cursor), len(all))
	end := min(start+f.pageLen, len(all))
	next := uint64(end)
	if end == len(all) {
		next = 0
	}
	return goredis.NewScanCmdResult(all[start:end], next, nil)
}

func TestStore_Lifecycle(t *testing.T) {
	ctx := t.Context()
	fc := newFakeClient()
	store := NewStore(fc, WithPrefix("raptor:"), WithTTL(time.Hour))

	_, err := store.Get(ctx, "correction_a.bin")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	require.NoError(t, store.Put(ctx, "correction_a.bin", []byte("first")))
	require.NoError(t, store.Put(ctx, "correction_a.bin", []byte("second")))
	require.NoError(t, store.Put(ctx, "correction_b.bin", []byte("b")))
	require.NoError(t, store.Put(ctx, "other.bin", []byte("o")))

	assert.Equal(t, time.Hour, fc.ttls["raptor:correction_a.bin"])

	data, err := blobstore.ReadAll(ctx, store, "correction_a.bin")
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), data)

	b, err := store.Open(ctx, "correction_b.bin")
	require.NoError(t, err)
	assert.Equal(t, int64(1), b.Size())

	names, err := store.List(ctx, "correction_")
	require.NoError(t, err)
	assert.Equal(t, []string{"correction_a.bin", "correction_b.bin"}, names)

	require.NoError(t, store.Delete(ctx, "correction_a.bin"))
	_, err = store.Open(ctx, "correction_a.bin")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	// After delete the key can be written again.
	require.NoError(t, store.Put(ctx, "correction_a.bin", []byte("third")))
	data, err = store.Get(ctx, "correction_a.bin")
	require.NoError(t, err)
	assert.Equal(t, []byte("third"), data)
}

func TestStore_GetError(t *testing.T) {
	fc := newFakeClient()
	fc.failGet = errors.New("connection refused")
	store := NewStore(fc)

	_, err := store.Get(t.Context(), "correction_a.bin")
	require.Error(t, err)
	assert.NotErrorIs(t, err, blobstore.ErrNotFound)
	assert.True(t, strings.Contains(err.Error(), "connection refused"))
}

func TestEscapeGlob(t *testing.T) {
	assert.Equal(t, `raptor\*:\[a\]\?`, escapeGlob("raptor*:[a]?"))
	assert.Equal(t, "correction_", escapeGlob("correction_"))
}

var _ blobstore.BlobStore = (*Store)(nil)
var _ Client = (*goredis.Client)(nil)
