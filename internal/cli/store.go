package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/intake/pkg/adapters/blob"
	"github.com/aretw0/intake/pkg/adapters/file"
	"github.com/aretw0/intake/pkg/adapters/memory"
	"github.com/aretw0/intake/pkg/adapters/redis"
	"github.com/aretw0/intake/pkg/persistence/middleware"
	"github.com/aretw0/intake/pkg/ports"
)

// Environment variables holding AES-256 keys (hex or base64) for answer encryption.
// Fallback keys are comma separated and only used to decrypt.
const (
	EnvEncryptionKey          = "INTAKE_ENCRYPTION_KEY"
	EnvEncryptionFallbackKeys = "INTAKE_ENCRYPTION_FALLBACK_KEYS"
)

// OpenStore builds the answer store selected by opts, wrapped with the PII and
// encryption middlewares when configured. The returned close function releases
// backend connections.
func OpenStore(ctx context.Context, opts StoreOptions) (ports.AnswerStore, func() error, error) {
	noop := func() error { return nil }

	var (
		store   ports.AnswerStore
		closeFn = noop
	)

	switch strings.ToLower(opts.Type) {
	case "", SinkFile:
		store = file.New(opts.Path)
	case SinkMemory:
		store = memory.NewStore()
	case SinkRedis:
		if opts.RedisURL == "" {
			return nil, noop, fmt.Errorf("--%s is required for the redis sink", FlagRedisURL)
		}
		var redisOpts []redis.Option
		if opts.RedisTTL > 0 {
			redisOpts = append(redisOpts, redis.WithTTL(opts.RedisTTL))
		}
		rs, err := redis.NewFromURL(opts.RedisURL, redisOpts...)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to configure redis sink: %w", err)
		}
		if err := rs.Ping(ctx); err != nil {
			_ = rs.Close()
			return nil, noop, fmt.Errorf("failed to reach redis: %w", err)
		}
		store, closeFn = rs, rs.Close
	case SinkBlob:
		if opts.BlobURL == "" {
			return nil, noop, fmt.Errorf("--%s is required for the blob sink", FlagBlobURL)
		}
		bs, err := blob.Open(ctx, opts.BlobURL, blob.DefaultPrefix)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to open blob sink: %w", err)
		}
		store, closeFn = bs, bs.Close
	default:
		return nil, noop, fmt.Errorf("unknown sink %q (want %s, %s, %s or %s)", opts.Type, SinkMemory, SinkFile, SinkRedis, SinkBlob)
	}

	var mws []middleware.Middleware
	if opts.Mask {
		mws = append(mws, middleware.NewPIIMiddleware(middleware.DefaultPIIPatterns))
	}
	enc, err := encryptionFromEnv()
	if err != nil {
		_ = closeFn()
		return nil, noop, err
	}
	if enc != nil {
		mws = append(mws, enc)
	}

	return middleware.Chain(store, mws...), closeFn, nil
}

func encryptionFromEnv() (middleware.Middleware, error) {
	raw := os.Getenv(EnvEncryptionKey)
	if raw == "" {
		return nil, nil
	}

	active, err := middleware.ParseKey(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvEncryptionKey, err)
	}

	var fallbacks [][]byte
	for _, part := range strings.Split(os.Getenv(EnvEncryptionFallbackKeys), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, err := middleware.ParseKey(part)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvEncryptionFallbackKeys, err)
		}
		fallbacks = append(fallbacks, key)
	}

	return middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey:    active,
		FallbackKeys: fallbacks,
	}), nil
}
