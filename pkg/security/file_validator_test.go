package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pdfBytes() []byte {
	return append([]byte("%PDF-1.7\n"), make([]byte, 16)...)
}

func pngBytes() []byte {
	return append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 16)...)
}

func TestValidateFileAcceptsPDF(t *testing.T) {
	result := ValidateFile("cv.pdf", pdfBytes(), "application/pdf")
	assert.True(t, result.Valid)
	assert.Equal(t, ".pdf", result.Extension)
	assert.Empty(t, result.Error)
}

func TestValidateFileRejectsDisallowedExtension(t *testing.T) {
	result := ValidateFile("payload.exe", []byte{0x4D, 0x5A, 0x90, 0x00}, "application/octet-stream")
	assert.False(t, result.Valid)
	assert.Contains(t, result.Error, "not allowed")
}

func TestValidateFileRejectsMissingExtension(t *testing.T) {
	result := ValidateFile("resume", pdfBytes(), "application/pdf")
	assert.False(t, result.Valid)
	assert.Contains(t, result.Error, "no extension")
}

func TestValidateFileRejectsSpoofedContent(t *testing.T) {
	// PNG bytes renamed to .pdf must fail the magic byte layer
	result := ValidateFile("cv.pdf", pngBytes(), "image/png")
	assert.False(t, result.Valid)
	assert.Contains(t, result.Error, "does not match extension")
}

func TestValidateFileRejectsOctetStream(t *testing.T) {
	// Even a valid-looking PDF is rejected when the sniffer gave up
	result := ValidateFile("cv.pdf", pdfBytes(), "application/octet-stream")
	assert.False(t, result.Valid)
}

func TestValidateFileAllowsOctetStreamForWordDocs(t *testing.T) {
	docx := append([]byte{0x50, 0x4B, 0x03, 0x04}, make([]byte, 16)...)
	result := ValidateFile("cv.docx", docx, "application/octet-stream")
	assert.True(t, result.Valid)
}

func TestValidateFileRejectsTinyFiles(t *testing.T) {
	result := ValidateFile("cv.pdf", []byte{0x25, 0x50}, "application/pdf")
	assert.False(t, result.Valid)
}

func TestValidateFileExtension(t *testing.T) {
	assert.NoError(t, ValidateFileExtension("photo.JPG"))
	assert.Error(t, ValidateFileExtension("script.sh"))
	assert.Error(t, ValidateFileExtension("README"))
}
