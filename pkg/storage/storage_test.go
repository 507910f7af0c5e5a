package storage

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a real multipart.FileHeader by parsing a one-part form.
func fileHeader(t *testing.T, name, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="files"; filename="`+name+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["files"][0]
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStorage(dir, 1<<20)
	require.NoError(t, err)

	name, err := s.SaveImage(fileHeader(t, "Photo.PNG", "image/png", pngBytes(t, 640, 480)))
	require.NoError(t, err)
	assert.Equal(t, ".png", filepath.Ext(name))

	path := filepath.Join(dir, name)
	assert.FileExists(t, path)
	assert.FileExists(t, ThumbnailPath(path))

	require.NoError(t, s.DeleteFile(name))
	assert.NoFileExists(t, path)
	assert.NoFileExists(t, ThumbnailPath(path))
}

func TestSaveImageRejects(t *testing.T) {
	s, err := NewStorage(t.TempDir(), 16)
	require.NoError(t, err)

	_, err = s.SaveImage(fileHeader(t, "notes.txt", "text/plain", []byte("hello")))
	assert.ErrorIs(t, err, ErrNotImage)

	_, err = s.SaveImage(fileHeader(t, "big.png", "image/png", pngBytes(t, 64, 64)))
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestThumbnailPath(t *testing.T) {
	assert.Equal(t, "/tmp/abc_thumb.jpg", ThumbnailPath("/tmp/abc.png"))
}

func TestDeleteMissingFile(t *testing.T) {
	s, err := NewStorage(t.TempDir(), 0)
	require.NoError(t, err)
	assert.NoError(t, s.DeleteFile("missing.png"))
}

func TestWriteFileRemovesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.png")
	broken := io.MultiReader(strings.NewReader("half an image"), iotest.ErrReader(errors.New("connection reset")))

	err := writeFile(path, broken)
	assert.ErrorContains(t, err, "connection reset")
	assert.NoFileExists(t, path)

	require.NoError(t, writeFile(path, strings.NewReader("whole")))
	assert.FileExists(t, path)
}
