package minio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicBase(t *testing.T) {
	assert.Equal(t, "http://localhost:9000", publicBase(Config{Endpoint: "localhost:9000"}))
	assert.Equal(t, "https://s3.example.com", publicBase(Config{Endpoint: "s3.example.com", UseSSL: true}))
	assert.Equal(t, "https://cdn.example.com", publicBase(Config{Endpoint: "minio:9000", PublicURL: "https://cdn.example.com/"}))
}

func TestObjectURL(t *testing.T) {
	assert.Equal(t,
		"http://localhost:9000/pictures/products/9/a.png",
		objectURL("http://localhost:9000", "pictures", "products/9/a.png"),
	)
	assert.Equal(t,
		"http://localhost:9000/pictures/x.jpg",
		objectURL("http://localhost:9000", "pictures", "/x.jpg"),
	)
}

func TestPictureStore_Remove(t *testing.T) {
	var method, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client, err := minio.New(strings.TrimPrefix(srv.URL, "http://"), &minio.Options{
		Creds:  credentials.NewStaticV4("key", "secret", ""),
		Region: "us-east-1",
	})
	require.NoError(t, err)
	store := &PictureStore{client: client, bucket: "pictures"}

	require.NoError(t, store.Remove(context.Background(), "products/9/a.png"))
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/pictures/products/9/a.png", path)
}
