package utils

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateQRCode(t *testing.T) {
	data, err := GenerateQRCode("ORD-a1b2c3d4", 128)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
	assert.Equal(t, 128, img.Bounds().Dy())
}

func TestGenerateQRCodeEmptyContent(t *testing.T) {
	_, err := GenerateQRCode("", 64)
	assert.Error(t, err)
}
