package checks

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"listsync/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// StorageReport is the result of a storage check.
type StorageReport struct {
	Bucket       string `json:"bucket"`
	BucketExists bool   `json:"bucket_exists"`
	Prefix       string `json:"prefix"`
	PrefixFound  bool   `json:"prefix_found"`
	Status       string `json:"status"` // "ok", "error"
}

// CheckStorage verifies the bucket exists and holds at least one object under prefix.
func CheckStorage(ctx context.Context, client storage.Client, bucket, prefix string) (*StorageReport, error) {
	report := &StorageReport{Bucket: bucket, Prefix: prefix, Status: "error"}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.BucketExists = exists
	if !exists {
		return report, nil
	}

	// The listing goroutine only exits once the channel is drained or ctx ends.
	listCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := minio.ListObjectsOptions{
		Prefix:    folder(prefix),
		Recursive: true,
		MaxKeys:   1,
	}
	for obj := range client.ListObjects(listCtx, bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", prefix, obj.Err)
		}
		report.PrefixFound = true
		break
	}

	if report.PrefixFound {
		report.Status = "ok"
	}
	return report, nil
}

// FixStorage creates what CheckStorage reported missing: the bucket and a folder
// marker for the source prefix.
func FixStorage(ctx context.Context, client storage.Client, logger *zap.Logger, report *StorageReport) error {
	if !report.BucketExists {
		if err := client.MakeBucket(ctx, report.Bucket, minio.MakeBucketOptions{}); err != nil {
			logger.Error("Failed to create bucket", zap.String("bucket", report.Bucket), zap.Error(err))
			return err
		}
		logger.Info("Created missing bucket", zap.String("bucket", report.Bucket))
	}

	if !report.PrefixFound {
		marker := folder(report.Prefix)
		_, err := client.PutObject(ctx, report.Bucket, marker, bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", marker), zap.Error(err))
			return err
		}
		logger.Info("Created missing folder", zap.String("folder", marker))
	}
	return nil
}

func folder(prefix string) string {
	if prefix == "" || strings.HasSuffix(prefix, "/") {
		return prefix
	}
	return prefix + "/"
}
