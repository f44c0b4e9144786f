package contracts

import "context"

// ObjectStorage is the blob-store boundary. Object names are
// bucket-relative paths ("images/<name>", "documents/<name>"); Upload
// returns the public URL the stored record references.
type ObjectStorage interface {
	Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
	Download(ctx context.Context, objectName string) ([]byte, error)
	Delete(ctx context.Context, objectName string) error
	// ObjectPath recovers the bucket-relative path from a stored URL,
	// the inverse of the URL returned by Upload.
	ObjectPath(url string) string
}
