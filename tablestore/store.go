package tablestore

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/idxarray"
	"github.com/hupe1980/idxarray/blobstore"
	"github.com/hupe1980/idxarray/internal/resource"
	"github.com/hupe1980/idxarray/snapshot"
)

// Suffix is appended to table names to form blob names.
const Suffix = ".idxa"

var (
	// ErrInvalidName is returned for table names that are empty, absolute,
	// or contain empty or ".." segments.
	ErrInvalidName = errors.New("tablestore: invalid table name")

	// ErrNotFound is returned when a table does not exist.
	ErrNotFound = blobstore.ErrNotFound

	// ErrMemoryLimitExceeded is returned when a single snapshot is larger
	// than the configured memory limit.
	ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded
)

// Store persists named arrays in a blob store.
type Store struct {
	blobs blobstore.BlobStore
	opts  options
	rc    *resource.Controller
}

// New returns a Store backed by bs.
func New(bs blobstore.BlobStore, opts ...Option) *Store {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Store{
		blobs: bs,
		opts:  o,
		rc: resource.NewController(resource.Config{
			MemoryLimitBytes:   o.memoryLimit,
			IOLimitBytesPerSec: o.rateLimit,
		}),
	}
}

// ValidateName reports whether name can be used as a table name.
// Names are slash-separated paths relative to the store root.
func ValidateName(name string) error {
	if name == "" || strings.HasPrefix(name, "/") || strings.ContainsRune(name, '\\') {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	for seg := range strings.SplitSeq(name, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
	}
	return nil
}

func blobName(name string) string {
	return name + Suffix
}

// Put stores a under name, replacing any existing table.
func Put[K idxarray.Index, T any](ctx context.Context, s *Store, name string, a *idxarray.Array[K, T]) (err error) {
	start := time.Now()
	var size int
	defer func() {
		s.opts.metrics.RecordPut(size, time.Since(start), err)
		s.opts.logger.LogPut(ctx, name, idxarray.Width[K](), size, err)
	}()

	if err := ValidateName(name); err != nil {
		return err
	}

	data, err := snapshot.Marshal(a, s.opts.snapshotOptions()...)
	if err != nil {
		return fmt.Errorf("tablestore: encode %q: %w", name, err)
	}

	release, err := s.rc.Reserve(ctx, int64(len(data)))
	if err != nil {
		return fmt.Errorf("tablestore: put %q: %w", name, err)
	}
	defer release()

	if err := s.rc.Throttle(ctx, len(data)); err != nil {
		return fmt.Errorf("tablestore: put %q: %w", name, err)
	}
	if err := s.blobs.Put(ctx, blobName(name), data); err != nil {
		return fmt.Errorf("tablestore: put %q: %w", name, err)
	}
	size = len(data)
	return nil
}

// Get loads the table stored under name. The snapshot must have been
// written with the index width of K.
func Get[K idxarray.Index, T any](ctx context.Context, s *Store, name string) (a *idxarray.Array[K, T], err error) {
	start := time.Now()
	var size int
	defer func() {
		s.opts.metrics.RecordGet(size, time.Since(start), err)
		s.opts.logger.LogGet(ctx, name, idxarray.Width[K](), size, err)
	}()

	if err := ValidateName(name); err != nil {
		return nil, err
	}

	b, err := s.blobs.Open(ctx, blobName(name))
	if err != nil {
		return nil, fmt.Errorf("tablestore: get %q: %w", name, err)
	}
	defer b.Close()

	n := b.Size()
	release, err := s.rc.Reserve(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("tablestore: get %q: %w", name, err)
	}
	defer release()

	if err := s.rc.Throttle(ctx, int(n)); err != nil {
		return nil, fmt.Errorf("tablestore: get %q: %w", name, err)
	}

	data, err := contents(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("tablestore: read %q: %w", name, err)
	}

	a, err = snapshot.Unmarshal[K, T](data, s.opts.snapshotOptions()...)
	if err != nil {
		return nil, fmt.Errorf("tablestore: decode %q: %w", name, err)
	}
	size = len(data)
	return a, nil
}

// contents returns the bytes of b, without copying when b is mapped.
// The result is valid until b is closed.
func contents(ctx context.Context, b blobstore.Blob) ([]byte, error) {
	if m, ok := b.(blobstore.Mappable); ok {
		return m.Bytes()
	}
	return blobstore.ReadAll(ctx, b)
}

// PutAll stores every table in tables. Tables are written concurrently,
// up to the configured concurrency, and PutAll returns the first error.
// Tables written before a failure are not rolled back.
func PutAll[K idxarray.Index, T any](ctx context.Context, s *Store, tables map[string]*idxarray.Array[K, T]) error {
	var failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.concurrency)

	for _, name := range slices.Sorted(maps.Keys(tables)) {
		a := tables[name]
		g.Go(func() error {
			if err := Put(gctx, s, name, a); err != nil {
				failed.Add(1)
				return err
			}
			return nil
		})
	}

	err := g.Wait()
	s.opts.logger.LogBulk(ctx, "put all", len(tables), int(failed.Load()))
	return err
}

// GetAll loads the named tables concurrently, up to the configured
// concurrency. It returns the first error and no tables if any load fails.
func GetAll[K idxarray.Index, T any](ctx context.Context, s *Store, names []string) (map[string]*idxarray.Array[K, T], error) {
	var (
		mu     sync.Mutex
		out    = make(map[string]*idxarray.Array[K, T], len(names))
		failed atomic.Int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.concurrency)

	for _, name := range names {
		g.Go(func() error {
			a, err := Get[K, T](gctx, s, name)
			if err != nil {
				failed.Add(1)
				return err
			}
			mu.Lock()
			out[name] = a
			mu.Unlock()
			return nil
		})
	}

	err := g.Wait()
	s.opts.logger.LogBulk(ctx, "get all", len(names), int(failed.Load()))
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the table stored under name. Deleting a missing table is
// not an error.
func (s *Store) Delete(ctx context.Context, name string) (err error) {
	start := time.Now()
	defer func() {
		s.opts.metrics.RecordDelete(time.Since(start), err)
		s.opts.logger.LogDelete(ctx, name, err)
	}()

	if err := ValidateName(name); err != nil {
		return err
	}
	if err := s.blobs.Delete(ctx, blobName(name)); err != nil {
		return fmt.Errorf("tablestore: delete %q: %w", name, err)
	}
	return nil
}

// List returns the sorted names of the tables whose names start with
// prefix. Blobs without the table suffix are ignored.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	blobs, err := s.blobs.List(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("tablestore: list %q: %w", prefix, err)
	}

	names := make([]string, 0, len(blobs))
	for _, b := range blobs {
		if name, ok := strings.CutSuffix(b, Suffix); ok && name != "" {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}

// Stat returns the snapshot header of the table stored under name without
// reading its payload.
func (s *Store) Stat(ctx context.Context, name string) (*snapshot.Info, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	b, err := s.blobs.Open(ctx, blobName(name))
	if err != nil {
		return nil, fmt.Errorf("tablestore: stat %q: %w", name, err)
	}
	defer b.Close()

	info, err := snapshot.ReadHeader(blobstore.NewReader(ctx, b))
	if err != nil {
		return nil, fmt.Errorf("tablestore: stat %q: %w", name, err)
	}
	return info, nil
}
