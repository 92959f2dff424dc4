package redis

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/mr-c/raptor/blobstore"
)

// Client is the subset of the go-redis API used by Store. *goredis.Client
// and *goredis.ClusterClient satisfy it.
type Client interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.BoolCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *goredis.ScanCmd
}

const scanBatch = 256

// Store implements blobstore.BlobStore on Redis string keys.
type Store struct {
	client Client
	prefix string
	ttl    time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithPrefix namespaces all keys.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithTTL expires artifacts after d. Zero keeps them forever.
func WithTTL(d time.Duration) Option {
	return func(s *Store) {
		s.ttl = d
	}
}

// NewStore creates a Store around client.
func NewStore(client Client, opts ...Option) *Store {
	s := &Store{client: client}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dial connects to a single Redis server.
func Dial(addr, password string, db int, opts ...Option) *Store {
	return NewStore(goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}), opts...)
}

func (s *Store) key(name string) string { return s.prefix + name }

// Open fetches the artifact and serves reads from memory.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	data, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return blobstore.NewBytesBlob(data), nil
}

// Get reads an artifact.
func (s *Store) Get(ctx context.Context, name string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key(name)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, blobstore.ErrNotFound
		}
		return nil, fmt.Errorf("redis: get %s: %w", name, err)
	}
	return data, nil
}

// Put stores data unless the key already exists.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	if err := blobstore.ValidateName(name); err != nil {
		return err
	}
	if err := s.client.SetNX(ctx, s.key(name), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis: put %s: %w", name, err)
	}
	return nil
}

// Delete removes an artifact.
func (s *Store) Delete(ctx context.Context, name string) error {
	return s.client.Del(ctx, s.key(name)).Err()
}

// List returns the sorted names beginning with prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	match := escapeGlob(s.key(prefix)) + "*"

	var names []string
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, match, scanBatch).Result()
		if err != nil {
			return nil, fmt.Errorf("redis: scan: %w", err)
		}
		for _, k := range keys {
			names = append(names, strings.TrimPrefix(k, s.prefix))
		}
		if next == 0 {
			break
		}
		cursor = next
	}
	slices.Sort(names)
	return slices.Compact(names), nil
}

var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

func escapeGlob(s string) string { return globEscaper.Replace(s) }
