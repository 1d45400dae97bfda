package utils

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestFileHeader creates a mock multipart.FileHeader for testing
func createTestFileHeader(t *testing.T, filename string, size int64, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", "image/png")
	part, _ := writer.CreatePart(h)
	part.Write(content)
	writer.Close()

	reader := multipart.NewReader(body, writer.Boundary())
	form, err := reader.ReadForm(int64(len(content)) + 1024)
	require.NoError(t, err)

	require.NotEmpty(t, form.File["file"])
	fileHeader := form.File["file"][0]
	// Override size for testing purposes
	fileHeader.Size = size
	return fileHeader
}

func TestValidateImageFile_Success(t *testing.T) {
	content := []byte("fake png content")
	fileHeader := createTestFileHeader(t, "pieza.png", int64(len(content)), content)

	err := ValidateImageFile(fileHeader)
	assert.NoError(t, err)
}

func TestValidateImageFile_FileTooLarge(t *testing.T) {
	content := []byte("fake png content")
	fileHeader := createTestFileHeader(t, "large.png", 11*1024*1024, content)

	err := ValidateImageFile(fileHeader)
	assert.Error(t, err)

	fileErr, ok := err.(*FileUploadError)
	require.True(t, ok, "Error should be of type FileUploadError")
	assert.Equal(t, "FILE_TOO_LARGE", fileErr.Code)
	assert.Contains(t, fileErr.Message, "File size exceeds maximum allowed size")
}

func TestValidateImageFile_InvalidFormats(t *testing.T) {
	for _, filename := range []string{"pieza.jpg", "pieza.jpeg", "pieza.gif", "pieza"} {
		t.Run(filename, func(t *testing.T) {
			content := []byte("fake content")
			fileHeader := createTestFileHeader(t, filename, int64(len(content)), content)

			err := ValidateImageFile(fileHeader)
			assert.Error(t, err)

			fileErr, ok := err.(*FileUploadError)
			require.True(t, ok, "Error should be of type FileUploadError")
			assert.Equal(t, "INVALID_FILE_FORMAT", fileErr.Code)
		})
	}
}

func TestValidateImageFile_CaseInsensitive(t *testing.T) {
	content := []byte("fake png content")
	fileHeader := createTestFileHeader(t, "pieza.PNG", int64(len(content)), content)

	err := ValidateImageFile(fileHeader)
	assert.NoError(t, err, "Validation should be case-insensitive")
}

func TestSaveUploadedFile(t *testing.T) {
	uploadDir := t.TempDir()

	content := []byte("fake png content")
	fileHeader := createTestFileHeader(t, "pieza.png", int64(len(content)), content)

	filename, err := SaveUploadedFile(fileHeader, uploadDir)
	require.NoError(t, err)
	assert.NotEmpty(t, filename)

	saved, err := os.ReadFile(filepath.Join(uploadDir, filename))
	require.NoError(t, err)
	assert.Equal(t, content, saved)
}

func TestGetImageURL(t *testing.T) {
	assert.Equal(t, "/api/v1/uploads/16_pieza.png", GetImageURL("16_pieza.png"))
	assert.Equal(t, "", GetImageURL(""))
}

func TestFileUploadError_Error(t *testing.T) {
	err := &FileUploadError{
		Code:    "TEST_CODE",
		Message: "Test error message",
	}

	assert.Equal(t, "Test error message", err.Error())
}
