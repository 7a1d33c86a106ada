// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface, which works against
// both AWS S3 and self-hosted MinIO. Source snapshots (the fresh data views are
// reconciled with) live in a bucket as JSON objects.
//
// # Client Interface
//
// The Client interface makes storage interactions easy to mock in unit tests
// (see core/storage/mocks).
//
// # Helpers
//
//   - ReadObject: downloads a whole object with an optional size limit.
//   - WriteObject: uploads bytes, creating the bucket when missing.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	data, err := storage.ReadObject(ctx, client, cfg.Storage.Bucket, "sources/tasks.json", 0)
package storage
