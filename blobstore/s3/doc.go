// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("trees/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	b := guidetree.New(guidetree.WithStore(store, "run-42.gtree"))
//
// # Features
//
//   - Managed uploads with CRC32C integrity checks
//   - Range reads
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
