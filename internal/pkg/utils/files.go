package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"medsafe-service/internal/pkg/constvars"
	"medsafe-service/internal/pkg/exceptions"
)

var allowedImageExtensions = map[string]string{
	".png":  constvars.MIMEImagePNG,
	".jpg":  constvars.MIMEImageJPEG,
	".jpeg": constvars.MIMEImageJPEG,
	".pdf":  constvars.MIMEApplicationPDF,
}

// ValidateImageFileName checks the uploaded diagnostic file against the
// allowed extensions and returns its content type.
func ValidateImageFileName(fileName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	contentType, ok := allowedImageExtensions[ext]
	if !ok {
		return "", exceptions.ErrImageValidation(fmt.Errorf("extension %q not allowed", ext))
	}
	return contentType, nil
}

// ContentTypeForExtension maps a stored artifact's extension back to a MIME
// type for downloads, octet-stream when unknown.
func ContentTypeForExtension(ext string) string {
	if contentType, ok := allowedImageExtensions[strings.ToLower(ext)]; ok {
		return contentType
	}
	return constvars.MIMEOctetStream
}

// StripExtension removes the final extension from a user-chosen file name.
func StripExtension(fileName string) string {
	if idx := strings.LastIndex(fileName, "."); idx > 0 {
		return fileName[:idx]
	}
	return fileName
}
