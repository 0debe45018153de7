package blob

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/intake/pkg/domain"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// DefaultPrefix is prepended to every object key.
const DefaultPrefix = "answers/"

// Store implements ports.AnswerStore on top of a gocloud.dev bucket.
// Any bucket URL whose driver is linked in works ("mem://", "file:///path").
type Store struct {
	bucket *blob.Bucket
	prefix string
}

// Open opens the bucket at bucketURL and stores answers under prefix.
func Open(ctx context.Context, bucketURL, prefix string) (*Store, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open bucket %s: %w", bucketURL, err)
	}
	return New(bucket, prefix), nil
}

// New wraps an already opened bucket.
func New(bucket *blob.Bucket, prefix string) *Store {
	return &Store{bucket: bucket, prefix: prefix}
}

func (s *Store) keyFor(key string) string {
	return s.prefix + key + ".json"
}

// Save writes the answers as a JSON object.
func (s *Store) Save(ctx context.Context, key string, answers map[string]string) error {
	if answers == nil {
		answers = map[string]string{}
	}
	data, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}
	opts := &blob.WriterOptions{ContentType: "application/json"}
	if err := s.bucket.WriteAll(ctx, s.keyFor(key), data, opts); err != nil {
		return fmt.Errorf("failed to write answers: %w", err)
	}
	return nil
}

// Load reads the answers stored under key.
func (s *Store) Load(ctx context.Context, key string) (map[string]string, error) {
	data, err := s.bucket.ReadAll(ctx, s.keyFor(key))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domain.ErrAnswersNotFound
		}
		return nil, fmt.Errorf("failed to read answers: %w", err)
	}

	answers := map[string]string{}
	if err := json.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal answers: %w", err)
	}
	return answers, nil
}

// Delete removes the answers object. Missing objects are ignored.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, s.keyFor(key))
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return fmt.Errorf("failed to delete answers: %w", err)
	}
	return nil
}

// List returns the keys stored under the prefix.
func (s *Store) List(ctx context.Context) ([]string, error) {
	keys := []string{}
	iter := s.bucket.List(&blob.ListOptions{Prefix: s.prefix})
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list answers: %w", err)
		}
		if obj.IsDir || !strings.HasSuffix(obj.Key, ".json") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(strings.TrimPrefix(obj.Key, s.prefix), ".json"))
	}
	return keys, nil
}

// Close releases the bucket.
func (s *Store) Close() error {
	return s.bucket.Close()
}
