package storage

import (
	"bytes"
	"path/filepath"
	"strings"
)

// FileValidationResult contains the result of file validation.
type FileValidationResult struct {
	Valid        bool
	Extension    string
	DetectedMIME string
	Error        string
}

// Magic byte signatures keyed by lowercase extension.
var magicBytes = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".gif":  {{0x47, 0x49, 0x46, 0x38, 0x37, 0x61}, {0x47, 0x49, 0x46, 0x38, 0x39, 0x61}}, // GIF87a & GIF89a
	".webp": {{0x52, 0x49, 0x46, 0x46}},                                                   // RIFF header
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                                                   // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}},                           // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                                                   // ZIP (PK..)
}

// Resume uploads: documents only.
var resumeExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

var resumeMIMETypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	// ZIP-based documents (DOCX detection fallback)
	"application/zip": true,
}

// Logo uploads: images only.
var logoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var logoMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ValidateResume checks a resume upload: extension whitelist, magic byte
// verification and MIME whitelist. application/octet-stream is rejected
// except for the doc/docx case where magic bytes already vouched for it.
func ValidateResume(filename string, data []byte, detectedMIME string) FileValidationResult {
	return validateFile(filename, data, detectedMIME, resumeExtensions, resumeMIMETypes, true)
}

// ValidateLogo checks a company logo upload against the image whitelist.
func ValidateLogo(filename string, data []byte, detectedMIME string) FileValidationResult {
	return validateFile(filename, data, detectedMIME, logoExtensions, logoMIMETypes, false)
}

func validateFile(filename string, data []byte, detectedMIME string, allowedExt, allowedMIME map[string]bool, allowOctetStreamDocs bool) FileValidationResult {
	result := FileValidationResult{
		DetectedMIME: detectedMIME,
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	result.Extension = ext

	// Layer 1: extension whitelist
	if !allowedExt[ext] {
		result.Error = "file extension not allowed: " + ext
		return result
	}

	// Layer 2: magic byte validation (content must match extension)
	if !validateMagicBytes(ext, data) {
		result.Error = "file content does not match extension (potential file spoofing detected)"
		return result
	}

	// Layer 3: MIME whitelist. Octet-stream allows arbitrary binary
	// uploads, so it only passes for doc/docx where magic bytes already
	// checked out.
	if detectedMIME == "application/octet-stream" {
		if !(allowOctetStreamDocs && (ext == ".doc" || ext == ".docx")) {
			result.Error = "ambiguous content type not allowed"
			return result
		}
	} else if detectedMIME != "" && !allowedMIME[detectedMIME] {
		result.Error = "content type not allowed: " + detectedMIME
		return result
	}

	result.Valid = true
	return result
}

func validateMagicBytes(ext string, data []byte) bool {
	signatures, ok := magicBytes[ext]
	if !ok || len(signatures) == 0 {
		return false
	}
	for _, sig := range signatures {
		if len(data) >= len(sig) && bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}
