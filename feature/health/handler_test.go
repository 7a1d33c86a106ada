package health

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"listsync/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client) {
	t.Helper()
	client := new(mocks.Client)

	app := fiber.New()
	f := NewFeature(client, "bucket", "sources", nil, zap.NewNop())
	require.True(t, f.IsEnabled())
	require.NoError(t, f.Load(app))
	return app, client
}

func get(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	return resp.StatusCode, out
}

func TestHandleHealthCheck(t *testing.T) {
	app, client := setupTestApp(t)
	client.On("BucketExists", mock.Anything, "bucket").Return(true, nil)
	client.On("ListObjects", mock.Anything, "bucket", mock.Anything).Return(func(_ context.Context, _ string, _ minio.ListObjectsOptions) <-chan minio.ObjectInfo {
		ch := make(chan minio.ObjectInfo, 1)
		ch <- minio.ObjectInfo{Key: "sources/a.json"}
		close(ch)
		return ch
	})

	status, body := get(t, app, "/health")
	assert.Equal(t, fiber.StatusOK, status)

	storage := body["storage"].(map[string]any)
	assert.Equal(t, "ok", storage["status"])

	// no database configured
	schema := body["schema"].(map[string]any)
	assert.Equal(t, "error", schema["status"])
}

func TestHandleStorageCheck(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		app, client := setupTestApp(t)
		client.On("BucketExists", mock.Anything, "bucket").Return(false, errors.New("offline"))

		status, body := get(t, app, "/health/storage")
		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Contains(t, body["error"], "offline")
	})

	t.Run("Fix", func(t *testing.T) {
		app, client := setupTestApp(t)
		client.On("BucketExists", mock.Anything, "bucket").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "bucket", mock.Anything).Return(nil)
		client.On("PutObject", mock.Anything, "bucket", "sources/", mock.Anything, int64(0), mock.Anything).
			Return(minio.UploadInfo{}, nil)

		status, body := get(t, app, "/health/storage?fix=true")
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "fixed", body["status"])
		client.AssertExpectations(t)
	})
}

func TestHandleSchemaCheck_NoDatabase(t *testing.T) {
	app, _ := setupTestApp(t)

	status, body := get(t, app, "/health/schema")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Contains(t, body["error"], "database connection is nil")
}
