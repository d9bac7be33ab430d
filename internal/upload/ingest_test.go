package upload

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpdeguzman/alkansave/internal/apperror"
)

// Minimal file headers, enough for http.DetectContentType to sniff.
var (
	pngBytes  = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)
	jpegBytes = append([]byte("\xff\xd8\xff\xe0"), bytes.Repeat([]byte{0}, 64)...)
	gifBytes  = append([]byte("GIF89a"), bytes.Repeat([]byte{0}, 64)...)
	bmpBytes  = append([]byte("BM"), bytes.Repeat([]byte{0}, 64)...)
)

func TestIngestorSave(t *testing.T) {
	t.Run("StoresPNG", func(t *testing.T) {
		dir := t.TempDir()
		ing := NewIngestor(dir, "/uploads/avatars/")

		path, err := ing.Save(5, bytes.NewReader(pngBytes), EditProfilePolicy())
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(path, "/uploads/avatars/user_5_"))
		assert.True(t, strings.HasSuffix(path, ".png"))

		stored, err := os.ReadFile(filepath.Join(dir, filepath.Base(path)))
		require.NoError(t, err)
		assert.Equal(t, pngBytes, stored)
	})

	t.Run("RejectsSniffedType", func(t *testing.T) {
		ing := NewIngestor(t.TempDir(), "/uploads/avatars")

		_, err := ing.Save(5, bytes.NewReader(bmpBytes), EditProfilePolicy())
		require.Error(t, err)
		assert.Equal(t, 400, apperror.StatusOf(err))
		assert.Equal(t, "Only JPG, PNG, and GIF images are allowed", apperror.MessageOf(err))
	})

	t.Run("RejectsOversize", func(t *testing.T) {
		ing := NewIngestor(t.TempDir(), "/uploads/avatars")

		big := append([]byte{}, pngBytes...)
		big = append(big, bytes.Repeat([]byte{0}, 2_000_000)...)

		_, err := ing.Save(5, bytes.NewReader(big), EditProfilePolicy())
		require.Error(t, err)
		assert.Equal(t, 400, apperror.StatusOf(err))
		assert.Equal(t, "Maximum file size exceeded (2MB limit)", apperror.MessageOf(err))
	})

	t.Run("RejectsEmpty", func(t *testing.T) {
		ing := NewIngestor(t.TempDir(), "/uploads/avatars")

		_, err := ing.Save(5, bytes.NewReader(nil), EditProfilePolicy())
		require.Error(t, err)
		assert.Equal(t, 400, apperror.StatusOf(err))
	})

	t.Run("GIFAllowedOnlyInEditFlow", func(t *testing.T) {
		ing := NewIngestor(t.TempDir(), "/uploads/avatars")

		_, err := ing.Save(5, bytes.NewReader(gifBytes), EditProfilePolicy())
		assert.NoError(t, err)

		_, err = ing.Save(5, bytes.NewReader(gifBytes), AvatarPolicy())
		require.Error(t, err)
		assert.Equal(t, "Only JPEG/PNG allowed", apperror.MessageOf(err))
	})

	t.Run("JPEGExtension", func(t *testing.T) {
		ing := NewIngestor(t.TempDir(), "/uploads/avatars")

		path, err := ing.Save(9, bytes.NewReader(jpegBytes), AvatarPolicy())
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(path, "/uploads/avatars/user_9_"))
		assert.True(t, strings.HasSuffix(path, ".jpg"))
	})

	t.Run("CreatesDirectory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "avatars")
		ing := NewIngestor(dir, "/uploads/avatars")

		_, err := ing.Save(5, bytes.NewReader(pngBytes), EditProfilePolicy())
		require.NoError(t, err)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}

func TestPolicyFilenames(t *testing.T) {
	edit := EditProfilePolicy()
	a := edit.Filename(5, "png")
	b := edit.Filename(5, "png")
	assert.NotEqual(t, a, b, "random suffix should differ per upload")
	assert.True(t, strings.HasPrefix(a, "user_5_"))

	avatar := AvatarPolicy()
	assert.True(t, strings.HasPrefix(avatar.Filename(7, "jpg"), "user_7_"))
}
