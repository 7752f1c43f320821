package constants

import "strings"

// FileTypes holds the allowed source types for the format field in ScanJob.
var FileTypes = []string{"IMAGE"}

const IMAGE = "IMAGE"

// AllowedExtensions holds the default allowed file extensions for card ingestion.
var AllowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"heic": {},
	"heif": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat returns the ScanJob format for a (normalized) extension,
// or "" when the extension is not supported.
func MapExtToFormat(ext string) string {
	if _, ok := AllowedExtensions[NormalizeExt(ext)]; ok {
		return IMAGE
	}
	return ""
}

// IsHEICExt reports whether the (normalized) extension needs HEIC conversion
// before it can be handed to the OCR engine.
func IsHEICExt(ext string) bool {
	switch NormalizeExt(ext) {
	case "heic", "heif":
		return true
	}
	return false
}
