package service

import (
	"context"
	"io"
	"path/filepath"
	"strings"
)

// Classification tells the upload endpoint whether a binary should go through
// image transformation or be stored untouched.
type Classification string

const (
	ClassificationAuto  Classification = "auto"
	ClassificationImage Classification = "image"
	ClassificationRaw   Classification = "raw"
)

// Uploader is the object-storage port. Upload returns a publicly addressable
// URL or fails; there is exactly one attempt, no retry.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, filename, mimeType string, classification Classification) (string, error)
}

// StagedFile is a binary the editor selected but has not persisted yet. It
// becomes a URL in the draft only after a successful upload during submit.
type StagedFile struct {
	Reader    io.Reader
	Filename  string
	MimeType  string
	Requested Classification
}

// rawExtensions are filename suffixes that mark a generic document rather
// than an image, whatever the declared MIME type says.
var rawExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".zip":  true,
}

// Classify decides the upload resource type from the declared MIME type and
// the filename extension jointly. If either indicates a non-image document
// format, the file is forced to raw even when the caller asked for auto, so
// the endpoint never tries to run an image transform over a PDF.
func Classify(mimeType, filename string, requested Classification) Classification {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	ext := strings.ToLower(filepath.Ext(filename))

	isRawDocument := mt == "application/pdf" ||
		strings.HasPrefix(mt, "application/msword") ||
		strings.HasPrefix(mt, "application/vnd.openxmlformats") ||
		strings.HasPrefix(mt, "application/zip") ||
		rawExtensions[ext]

	if isRawDocument {
		return ClassificationRaw
	}
	if requested == "" {
		return ClassificationAuto
	}
	return requested
}

// Classification resolves the staged file's final resource type.
func (f *StagedFile) Classification() Classification {
	return Classify(f.MimeType, f.Filename, f.Requested)
}
