package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractObjectPath(t *testing.T) {
	bucket := "upload-dir"

	t.Run("Full URL", func(t *testing.T) {
		url := "http://localhost:9000/upload-dir/images/ab12cd34_scan.png"
		assert.Equal(t, "images/ab12cd34_scan.png", ExtractObjectPath(url, bucket))
	})

	t.Run("Full URL with encoded segment", func(t *testing.T) {
		url := "https://minio.example.com/upload-dir/images/ab12cd34_lastra%20torace.png"
		assert.Equal(t, "images/ab12cd34_lastra torace.png", ExtractObjectPath(url, bucket))
	})

	t.Run("Relative path with bucket prefix", func(t *testing.T) {
		assert.Equal(t, "documents/ab12cd34_referto.pdf", ExtractObjectPath("upload-dir/documents/ab12cd34_referto.pdf", bucket))
	})

	t.Run("Already an object path", func(t *testing.T) {
		assert.Equal(t, "images/ab12cd34_scan.png", ExtractObjectPath("images/ab12cd34_scan.png", bucket))
	})

	t.Run("Bucket name inside object path is not a marker", func(t *testing.T) {
		url := "http://localhost:9000/upload-dir/images/upload-dir.png"
		assert.Equal(t, "images/upload-dir.png", ExtractObjectPath(url, bucket))
	})
}

func TestEncodeObjectPath(t *testing.T) {
	t.Run("Plain path is unchanged", func(t *testing.T) {
		assert.Equal(t, "images/ab12cd34_scan.png", EncodeObjectPath("images/ab12cd34_scan.png"))
	})

	t.Run("Segments with spaces are escaped", func(t *testing.T) {
		assert.Equal(t, "images/ab12cd34_lastra%20torace.png", EncodeObjectPath("images/ab12cd34_lastra torace.png"))
	})

	t.Run("Extract inverts encode", func(t *testing.T) {
		objectPath := "documents/ab12cd34_referto finale.pdf"
		url := "http://localhost:9000/upload-dir/" + EncodeObjectPath(objectPath)
		assert.Equal(t, objectPath, ExtractObjectPath(url, "upload-dir"))
	})
}
