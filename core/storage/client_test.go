package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"listsync/core/storage"
	"listsync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Bucket:    "test-bucket",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestReadObject(t *testing.T) {
	ctx := context.Background()

	t.Run("Reads whole object", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "b", "sources/a.json", mock.Anything).
			Return(io.NopCloser(strings.NewReader(`[{"id":1}]`)), nil)

		data, err := storage.ReadObject(ctx, client, "b", "sources/a.json", 0)
		require.NoError(t, err)
		assert.Equal(t, `[{"id":1}]`, string(data))
	})

	t.Run("Rejects oversized object", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "b", "big.json", mock.Anything).
			Return(io.NopCloser(bytes.NewReader(make([]byte, 32))), nil)

		_, err := storage.ReadObject(ctx, client, "b", "big.json", 16)
		assert.ErrorContains(t, err, "exceeds 16 bytes")
	})

	t.Run("Propagates get errors", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "b", "missing.json", mock.Anything).
			Return(nil, errors.New("NoSuchKey"))

		_, err := storage.ReadObject(ctx, client, "b", "missing.json", 0)
		assert.ErrorContains(t, err, "NoSuchKey")
	})
}

func TestWriteObject(t *testing.T) {
	ctx := context.Background()
	data := []byte(`[]`)

	t.Run("Creates missing bucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "b", mock.Anything).Return(nil)
		client.On("PutObject", mock.Anything, "b", "sources/x.json", mock.Anything, int64(2), mock.MatchedBy(func(o minio.PutObjectOptions) bool {
			return o.ContentType == "application/json"
		})).Return(minio.UploadInfo{}, nil)

		err := storage.WriteObject(ctx, client, "b", "sources/x.json", data, "application/json")
		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("Existing bucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(true, nil)
		client.On("PutObject", mock.Anything, "b", "x.json", mock.Anything, int64(2), mock.Anything).
			Return(minio.UploadInfo{}, errors.New("denied"))

		err := storage.WriteObject(ctx, client, "b", "x.json", data, "")
		assert.ErrorContains(t, err, "denied")
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})
}
