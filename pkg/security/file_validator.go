package security

import (
	"bytes"
	"net/http"
	"path/filepath"
	"strings"
)

// FileValidationResult contains the result of upload validation
type FileValidationResult struct {
	Valid        bool
	Extension    string
	DetectedMIME string
	Error        string
}

// Workbooks are ZIP containers
var zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}

var allowedWorkbookExtensions = map[string]bool{
	".xlsx": true,
}

// application/octet-stream is accepted only because the magic bytes were checked first
var workbookMIMETypes = map[string]bool{
	"application/zip":          true,
	"application/octet-stream": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
}

// ValidateWorkbook runs the extension, magic byte and sniffed MIME checks on an
// uploaded spreadsheet. head needs at least the first 512 bytes when available.
func ValidateWorkbook(filename string, head []byte) FileValidationResult {
	result := FileValidationResult{DetectedMIME: http.DetectContentType(head)}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	result.Extension = ext

	if !allowedWorkbookExtensions[ext] {
		result.Error = "file extension not allowed: " + ext
		return result
	}

	if !bytes.HasPrefix(head, zipMagic) {
		result.Error = "file content does not match extension"
		return result
	}

	if !workbookMIMETypes[result.DetectedMIME] {
		result.Error = "MIME type not allowed: " + result.DetectedMIME
		return result
	}

	result.Valid = true
	return result
}
