package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{200, 120, 40, 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNormalizeJPEG(t *testing.T) {
	photo, err := Normalize(bytes.NewReader(encodeJPEG(t, 100, 100)))
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", photo.MIME)
	assert.NotEmpty(t, photo.Data)
}

func TestNormalizePNGBecomesJPEG(t *testing.T) {
	photo, err := Normalize(bytes.NewReader(encodePNG(t, 100, 100)))
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", photo.MIME)
}

func TestNormalizeDownscalesLargePhoto(t *testing.T) {
	photo, err := Normalize(bytes.NewReader(encodeJPEG(t, 2400, 1600)))
	require.NoError(t, err)

	img, _, err := image.Decode(bytes.NewReader(photo.Data))
	require.NoError(t, err)
	bounds := img.Bounds()
	assert.LessOrEqual(t, bounds.Dx(), MaxEdge)
	assert.LessOrEqual(t, bounds.Dy(), MaxEdge)
	// Aspect ratio survives the resize.
	assert.Equal(t, MaxEdge, bounds.Dx())
	assert.Equal(t, 800, bounds.Dy())
}

func TestNormalizeKeepsSmallPhoto(t *testing.T) {
	photo, err := Normalize(bytes.NewReader(encodeJPEG(t, 60, 40)))
	require.NoError(t, err)

	img, _, err := image.Decode(bytes.NewReader(photo.Data))
	require.NoError(t, err)
	assert.Equal(t, 60, img.Bounds().Dx())
	assert.Equal(t, 40, img.Bounds().Dy())
}

func TestNormalizeRejectsNonImages(t *testing.T) {
	_, err := Normalize(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)

	_, err = Normalize(bytes.NewReader([]byte("GIF89a...")))
	assert.Error(t, err)
}
