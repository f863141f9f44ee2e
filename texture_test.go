package ritotex

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func gradientImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: gradientPixels(width, height),
	}
}

func TestEncodeDecodeAutoDetect(t *testing.T) {
	img := gradientImage(16, 16)

	for _, kind := range []ContainerKind{ContainerTEX, ContainerDDS} {
		for _, format := range []Format{FormatBC1, FormatBC3, FormatBGRA8} {
			t.Run(kind.String()+"/"+format.String(), func(t *testing.T) {
				data, err := Encode(img, kind, format)
				require.NoError(t, err)

				out, err := Decode(data)
				require.NoError(t, err)
				require.Equal(t, img.Width, out.Width)
				require.Equal(t, img.Height, out.Height)
				require.Equal(t, format, out.Format)
				require.Len(t, out.Pixels, img.Width*img.Height*4)

				if format == FormatBGRA8 {
					require.Equal(t, img.Pixels, out.Pixels)
				}
			})
		}
	}
}

func TestDecodeUnknownMagic(t *testing.T) {
	_, err := Decode([]byte("PNG\x00 definitely not a texture"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Decode([]byte{0x54})
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecodeConfig(t *testing.T) {
	data, err := Encode(gradientImage(24, 12), ContainerTEX, FormatBC3)
	require.NoError(t, err)

	cfg, err := DecodeConfig(data)
	require.NoError(t, err)
	require.Equal(t, 24, cfg.Width)
	require.Equal(t, 12, cfg.Height)
	require.Equal(t, color.NRGBAModel, cfg.ColorModel)
}

func TestEncodeTexWithMipChain(t *testing.T) {
	data, err := EncodeTexWithMipChain(gradientImage(16, 16), FormatBC1)
	require.NoError(t, err)

	c, err := DecodeTex(data)
	require.NoError(t, err)
	require.True(t, c.HasMipChain)
	require.Len(t, c.Levels, 5)
	// smallest first: 1x1 through 16x16
	require.Len(t, c.Levels[0], 8)
	require.Len(t, c.Levels[4], 4*4*8)

	img, err := c.Image()
	require.NoError(t, err)
	require.Len(t, img.Pixels, 16*16*4)
}

func TestImageNRGBARoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 30), G: uint8(y * 60), B: 100, A: 255})
		}
	}

	img := ImageFrom(src)
	require.Equal(t, 8, img.Width)
	require.Equal(t, 4, img.Height)
	require.True(t, bytes.Equal(src.Pix, img.NRGBA().Pix))
}

func TestConcurrentDecode(t *testing.T) {
	// Pure value semantics: many goroutines decode and encode the same
	// input without coordination.
	data, err := Encode(gradientImage(32, 32), ContainerDDS, FormatBC3)
	require.NoError(t, err)

	want, err := Decode(data)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 16)
	for i := range errs {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			got, err := Decode(data)
			if err != nil {
				errs[n] = err
				return
			}
			if !bytes.Equal(got.Pixels, want.Pixels) {
				errs[n] = errors.New("pixel mismatch")
			}
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "goroutine %d", i)
	}
}

func TestEncodeUnknownKind(t *testing.T) {
	_, err := Encode(gradientImage(4, 4), ContainerKind(9), FormatBC1)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}
