package constants

import "strings"

// DocumentExtensions holds the file extensions we treat as candidate documents
// when they appear in a message part's name/filename parameter.
var DocumentExtensions = map[string]struct{}{
	"pdf":  {},
	"ofd":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"bmp":  {},
}

// BinaryDocumentMediaTypes holds type/subtype pairs that mark a message part
// as a candidate document regardless of disposition.
var BinaryDocumentMediaTypes = map[string]struct{}{
	"application/pdf":          {},
	"application/ofd":          {},
	"application/octet-stream": {},
	"image/jpeg":               {},
	"image/png":                {},
	"image/bmp":                {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsDocumentExt reports whether a filename carries a known document extension.
func IsDocumentExt(filename string) bool {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return false
	}
	_, ok := DocumentExtensions[NormalizeExt(filename[i:])]
	return ok
}

// IsBinaryDocumentMedia reports whether type/subtype names a known binary
// document kind.
func IsBinaryDocumentMedia(mediaType, subtype string) bool {
	key := strings.ToLower(mediaType) + "/" + strings.ToLower(subtype)
	_, ok := BinaryDocumentMediaTypes[key]
	return ok
}
