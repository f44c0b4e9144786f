package storage

import (
	"net/url"
	"strings"
)

// EncodeObjectPath escapes each path segment of an object name so the
// resulting public URL is invertible by ExtractObjectPath.
func EncodeObjectPath(objectName string) string {
	segments := strings.Split(objectName, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}

// pathMatcher attempts to recover the bucket-relative object path from a
// stored artifact URL. Matchers are tried in order, first match wins.
type pathMatcher func(rawURL, bucket string) (string, bool)

var pathMatchers = []pathMatcher{
	matchFullURL,
	matchRelativePath,
}

// ExtractObjectPath recovers the object path from a stored URL. It handles
// full URLs containing "/<bucket>/<path>" and already-relative
// "<bucket>/<path>" values; anything else is used verbatim as a path.
func ExtractObjectPath(rawURL, bucket string) string {
	for _, match := range pathMatchers {
		if path, ok := match(rawURL, bucket); ok {
			return decodeObjectPath(path)
		}
	}
	return rawURL
}

func matchFullURL(rawURL, bucket string) (string, bool) {
	marker := "/" + bucket + "/"
	idx := strings.Index(rawURL, marker)
	if idx == -1 {
		return "", false
	}
	return rawURL[idx+len(marker):], true
}

func matchRelativePath(rawURL, bucket string) (string, bool) {
	prefix := bucket + "/"
	if !strings.HasPrefix(rawURL, prefix) {
		return "", false
	}
	return rawURL[len(prefix):], true
}

func decodeObjectPath(path string) string {
	decoded, err := url.PathUnescape(path)
	if err != nil {
		return path
	}
	return decoded
}
