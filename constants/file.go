package constants

import "strings"

// FileTypes holds the allowed file types for the format field in pipeline_job.
var FileTypes = []string{"PDF", "DOCX", "IMAGE", "TXT", "MD"}

// AllowedExtensions holds the default allowed extensions for document uploads.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"docx": {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"txt":  {},
	"md":   {},
}

// MaxUploadBytes caps the size of a submitted document (50 MB).
const MaxUploadBytes = 50 << 20

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to its pipeline format, or "".
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return "PDF"
	case "docx":
		return "DOCX"
	case "jpg", "jpeg", "png":
		return "IMAGE"
	case "txt":
		return "TXT"
	case "md", "markdown":
		return "MD"
	default:
		return ""
	}
}
