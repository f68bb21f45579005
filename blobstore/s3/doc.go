// Package s3 provides an Amazon S3 implementation of the blobstore.BlobStore
// interface.
//
// # Usage
//
//	store, err := s3.NewFromConfig(ctx, "my-bucket", "tables/")
//	tables := tablestore.New(store)
//
// Or with an existing client:
//
//	store := s3.NewStore(s3sdk.NewFromConfig(cfg), "my-bucket", "tables/")
//
// # Features
//
//   - Range reads, so header-only reads fetch only the header bytes
//   - CRC32C-validated uploads
//   - Multipart uploads via feature/s3/manager for large 16-bit tables
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
//
// Client is the subset of *s3.Client the store uses; tests substitute a
// mock.
package s3
