package cmd

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hupe1980/idxarray/blobstore"
	miniostore "github.com/hupe1980/idxarray/blobstore/minio"
	s3store "github.com/hupe1980/idxarray/blobstore/s3"
	"github.com/hupe1980/idxarray/tablestore"
)

type storeKind int

const (
	storeLocal storeKind = iota
	storeS3
	storeMinIO
)

// location is a parsed --store value.
type location struct {
	kind     storeKind
	path     string // local directory
	endpoint string // MinIO host[:port]
	bucket   string
	prefix   string
}

func parseLocation(raw string) (location, error) {
	if raw == "" {
		return location{kind: storeLocal, path: "."}, nil
	}

	u, err := url.Parse(raw)
	// Single-letter schemes are Windows drive letters.
	if err != nil || len(u.Scheme) <= 1 {
		return location{kind: storeLocal, path: raw}, nil
	}

	switch u.Scheme {
	case "file":
		return location{kind: storeLocal, path: u.Path}, nil
	case "s3":
		if u.Host == "" {
			return location{}, fmt.Errorf("store %q: missing bucket", raw)
		}
		return location{kind: storeS3, bucket: u.Host, prefix: strings.Trim(u.Path, "/")}, nil
	case "minio":
		bucket, prefix, _ := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
		if u.Host == "" || bucket == "" {
			return location{}, fmt.Errorf("store %q: want minio://endpoint/bucket[/prefix]", raw)
		}
		return location{kind: storeMinIO, endpoint: u.Host, bucket: bucket, prefix: strings.Trim(prefix, "/")}, nil
	default:
		return location{}, fmt.Errorf("store %q: unsupported scheme %q", raw, u.Scheme)
	}
}

func (a *app) openBlobStore(ctx context.Context) (blobstore.BlobStore, error) {
	loc, err := parseLocation(a.v.GetString("store"))
	if err != nil {
		return nil, err
	}

	var bs blobstore.BlobStore
	switch loc.kind {
	case storeLocal:
		return blobstore.NewLocalStore(loc.path), nil
	case storeS3:
		s, err := s3store.NewFromConfig(ctx, loc.bucket, loc.prefix)
		if err != nil {
			return nil, err
		}
		bs = s
	case storeMinIO:
		client, err := minio.New(loc.endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(a.v.GetString("minio_access_key"), a.v.GetString("minio_secret_key"), ""),
			Secure: !a.v.GetBool("minio_insecure"),
		})
		if err != nil {
			return nil, fmt.Errorf("minio client: %w", err)
		}
		bs = miniostore.NewStore(client, loc.bucket, loc.prefix)
	}

	if size := a.v.GetInt64("cache_size"); size > 0 {
		bs = blobstore.NewCachingStore(bs, size)
	}
	return bs, nil
}

func (a *app) openStore(ctx context.Context) (*tablestore.Store, error) {
	bs, err := a.openBlobStore(ctx)
	if err != nil {
		return nil, err
	}
	logger, err := a.logger()
	if err != nil {
		return nil, err
	}
	return tablestore.New(bs, tablestore.WithLogger(logger)), nil
}
