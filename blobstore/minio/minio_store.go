package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"slices"

	"github.com/minio/minio-go/v7"

	"github.com/hupe1980/idxarray/blobstore"
)

// Store is a blobstore.BlobStore over one bucket of a MinIO or other
// S3-compatible server.
type Store struct {
	client *minio.Client
	bucket string
	keys   blobstore.KeyPrefix
}

// NewStore returns a Store keeping blobs in bucket below rootPrefix
// (for example "tables/").
func NewStore(client *minio.Client, bucket, rootPrefix string) *Store {
	return &Store{client: client, bucket: bucket, keys: blobstore.NewKeyPrefix(rootPrefix)}
}

// translate maps missing-object responses to blobstore.ErrNotFound.
func translate(err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NotFound":
		return blobstore.ErrNotFound
	}
	return err
}

// Open stats the object and returns a Blob pinned to its current ETag.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	key := s.keys.Key(name)
	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, translate(err)
	}
	return &object{store: s, key: key, etag: info.ETag, size: info.Size}, nil
}

// Put uploads data in a single request. Object writes are atomic on the
// server.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	if name == "" {
		return blobstore.ErrInvalidName
	}
	opts := minio.PutObjectOptions{ContentType: "application/octet-stream", DisableMultipart: true}
	_, err := s.client.PutObject(ctx, s.bucket, s.keys.Key(name), bytes.NewReader(data), int64(len(data)), opts)
	return err
}

// Delete removes the object. Missing objects are not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	err := translate(s.client.RemoveObject(ctx, s.bucket, s.keys.Key(name), minio.RemoveObjectOptions{}))
	if errors.Is(err, blobstore.ErrNotFound) {
		return nil
	}
	return err
}

// List returns the sorted names below prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	opts := minio.ListObjectsOptions{Prefix: s.keys.Key(prefix), Recursive: true}

	var names []string
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		if name, ok := s.keys.Name(obj.Key); ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}

var errNegativeOffset = errors.New("minio: negative offset")

// object reads one version of a key with ranged GETs. Reads fail once the
// key is overwritten, so a header and payload always come from the same
// Put.
type object struct {
	store *Store
	key   string
	etag  string
	size  int64
}

func (o *object) Size() int64 { return o.size }

func (o *object) Close() error { return nil }

func (o *object) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	switch {
	case len(p) == 0:
		return 0, nil
	case off < 0:
		return 0, errNegativeOffset
	case off >= o.size:
		return 0, io.EOF
	}
	want := min(int64(len(p)), o.size-off)

	var opts minio.GetObjectOptions
	if err := opts.SetRange(off, off+want-1); err != nil {
		return 0, err
	}
	if o.etag != "" {
		if err := opts.SetMatchETag(o.etag); err != nil {
			return 0, err
		}
	}

	body, err := o.store.client.GetObject(ctx, o.store.bucket, o.key, opts)
	if err != nil {
		return 0, translate(err)
	}
	defer body.Close()

	n, err := io.ReadFull(body, p[:want])
	if err == nil && int64(n) < int64(len(p)) {
		err = io.EOF
	}
	return n, err
}
