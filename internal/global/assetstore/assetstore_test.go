package assetstore

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.Copy(part, bytes.NewReader(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/test", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func TestSaveFileLocal(t *testing.T) {
	dir := t.TempDir()
	store := &Store{SaveDir: dir, BaseURL: "/uploads"}

	url, err := store.SaveFile(fileHeader(t, "cover.png", []byte("png-bytes")))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "/uploads/"))
	require.True(t, strings.HasSuffix(url, "cover.png"))

	// 引用与落盘文件一一对应
	saved := filepath.Join(dir, strings.TrimPrefix(url, "/uploads/"))
	content, err := os.ReadFile(saved)
	require.NoError(t, err)
	require.Equal(t, []byte("png-bytes"), content)
}

func TestSaveFileDistinctNames(t *testing.T) {
	dir := t.TempDir()
	store := &Store{SaveDir: dir, BaseURL: "/uploads"}

	// 同名文件多次上传得到不同引用
	u1, err := store.SaveFile(fileHeader(t, "same.png", []byte("a")))
	require.NoError(t, err)
	u2, err := store.SaveFile(fileHeader(t, "same.png", []byte("b")))
	require.NoError(t, err)
	require.NotEqual(t, u1, u2)
}

func TestUniqueNameSanitized(t *testing.T) {
	name := uniqueName("../路径 注入!.png")
	require.NotContains(t, name, "/")
	require.NotContains(t, name, " ")
	require.True(t, strings.HasSuffix(name, ".png"))
}
