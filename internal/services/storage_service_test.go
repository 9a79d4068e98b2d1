// internal/services/storage_service_test.go
package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectImageType(t *testing.T) {
	pad := func(prefix []byte) []byte {
		data := make([]byte, 16)
		copy(data, prefix)
		return data
	}

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"jpeg", pad([]byte{0xFF, 0xD8, 0xFF, 0xE0}), "image/jpeg"},
		{"png", pad([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}), "image/png"},
		{"gif", pad([]byte("GIF89a")), "image/gif"},
		{"webp", []byte("RIFF....WEBPVP8 "), "image/webp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := detectImageType(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := detectImageType([]byte("not an image at all"))
	assert.ErrorIs(t, err, ErrInvalidFileType)

	_, err = detectImageType([]byte{0xFF})
	assert.ErrorIs(t, err, ErrInvalidFileType)
}

func TestGenerateFileName(t *testing.T) {
	name := generateFileName("cars", "photo.JPG")
	assert.True(t, strings.HasPrefix(name, "cars/"))
	assert.True(t, strings.HasSuffix(name, ".jpg"))

	// Missing extension falls back to jpg
	name = generateFileName("motorcycles", "photo")
	assert.True(t, strings.HasSuffix(name, ".jpg"))

	// Names never collide
	assert.NotEqual(t, generateFileName("cars", "a.png"), generateFileName("cars", "a.png"))
}
