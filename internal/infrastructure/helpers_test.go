package infrastructure

import (
	"testing"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/stretchr/testify/assert"
)

func TestGetExtensionFromMIME(t *testing.T) {
	ext, err := GetExtensionFromMIME("image/jpeg")
	assert.NoError(t, err)
	assert.Equal(t, "jpg", ext)

	ext, err = GetExtensionFromMIME("image/webp")
	assert.NoError(t, err)
	assert.Equal(t, "webp", ext)

	_, err = GetExtensionFromMIME("text/html; charset=utf-8")
	assert.ErrorIs(t, err, e.ErrUnsupportedMediaType)
}
