package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_UploadAndDelete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	storage := NewBlobStorage(bucket, "https://cdn.dcars.example/images/")

	url, err := storage.Upload(ctx, "vehicles/abc/front view.jpg", "image/jpeg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.dcars.example/images/vehicles/abc/front%20view.jpg", url)

	data, err := bucket.ReadAll(ctx, "vehicles/abc/front view.jpg")
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))

	attrs, err := bucket.Attributes(ctx, "vehicles/abc/front view.jpg")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", attrs.ContentType)

	require.NoError(t, storage.Delete(ctx, "vehicles/abc/front view.jpg", "vehicles/abc/missing.jpg"))

	exists, err := bucket.Exists(ctx, "vehicles/abc/front view.jpg")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobStorage_DeleteNothing(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	assert.NoError(t, NewBlobStorage(bucket, "").Delete(context.Background()))
}
