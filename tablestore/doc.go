// Package tablestore persists named arrays as snapshots in a blob store.
//
// A table is one idxarray.Array encoded with the snapshot package and
// stored under its name plus the ".idxa" suffix. Any blobstore.BlobStore
// can back a Store: in memory, a local directory, MinIO, or S3.
//
//	store := tablestore.New(blobstore.NewLocalStore("/var/lib/tables"),
//	    tablestore.WithCompression(snapshot.CompressionZSTD),
//	    tablestore.WithConcurrency(8),
//	)
//
//	if err := tablestore.Put(ctx, store, "opcodes/x86", table); err != nil {
//	    return err
//	}
//	table, err := tablestore.Get[uint8, string](ctx, store, "opcodes/x86")
//
// # Bulk Operations
//
// PutAll and GetAll transfer many tables with bounded concurrency and stop
// at the first failure. WithMemoryLimit bounds the snapshot bytes held in
// flight and WithRateLimit bounds the transfer throughput.
//
// # Thread Safety
//
// A Store is safe for concurrent use if its blob store is.
package tablestore
