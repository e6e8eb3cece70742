package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name      string
		mimeType  string
		filename  string
		requested Classification
		expected  Classification
	}{
		{
			name:     "pdf by mime type",
			mimeType: "application/pdf", filename: "resume", requested: ClassificationAuto,
			expected: ClassificationRaw,
		},
		{
			name:     "pdf by extension even with image mime",
			mimeType: "image/png", filename: "resume.pdf", requested: ClassificationAuto,
			expected: ClassificationRaw,
		},
		{
			name:     "docx by mime prefix",
			mimeType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			filename: "cv", requested: ClassificationAuto,
			expected: ClassificationRaw,
		},
		{
			name:     "zip by extension",
			mimeType: "", filename: "bundle.ZIP", requested: ClassificationAuto,
			expected: ClassificationRaw,
		},
		{
			name:     "image stays auto",
			mimeType: "image/jpeg", filename: "photo.jpg", requested: ClassificationAuto,
			expected: ClassificationAuto,
		},
		{
			name:     "explicit image request honored for images",
			mimeType: "image/png", filename: "photo.png", requested: ClassificationImage,
			expected: ClassificationImage,
		},
		{
			name:     "raw document overrides image request",
			mimeType: "application/pdf", filename: "resume.pdf", requested: ClassificationImage,
			expected: ClassificationRaw,
		},
		{
			name:     "empty request defaults to auto",
			mimeType: "image/png", filename: "photo.png", requested: "",
			expected: ClassificationAuto,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.mimeType, tc.filename, tc.requested))
		})
	}
}

func TestStagedFileClassification(t *testing.T) {
	f := &StagedFile{Filename: "resume.pdf", MimeType: "application/pdf", Requested: ClassificationAuto}
	assert.Equal(t, ClassificationRaw, f.Classification())
}
