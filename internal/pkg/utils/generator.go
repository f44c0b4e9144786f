package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerateUniqueObjectName prefixes a short random token to the
// caller-supplied name so concurrent uploads never collide.
func GenerateUniqueObjectName(originalName string) string {
	token := uuid.NewString()[:8]
	return fmt.Sprintf("%s_%s", token, originalName)
}

func GenerateRequestID() string {
	return uuid.NewString()
}
