package ritotex

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// ContainerKind selects the on-disk container framing.
type ContainerKind uint8

const (
	// ContainerTEX is the compact single-image container.
	ContainerTEX ContainerKind = iota + 1
	// ContainerDDS is the standard DDS container.
	ContainerDDS
)

// String implements fmt.Stringer.
func (k ContainerKind) String() string {
	switch k {
	case ContainerTEX:
		return "TEX"
	case ContainerDDS:
		return "DDS"
	default:
		return fmt.Sprintf("ContainerKind(%d)", uint8(k))
	}
}

// Container is the decode/encode boundary object of both codecs. It is
// produced by DecodeTex or DecodeDDS and never mutated in place.
//
// For TEX with HasMipChain set, Levels holds every mip in on-disk
// order, smallest first. Otherwise Levels holds exactly one entry, the
// top-resolution payload.
type Container struct {
	Width  int
	Height int
	Format Format

	// HasMipChain mirrors the TEX header's mip chain flag.
	HasMipChain bool

	Levels [][]byte

	// Unknown1 and Unknown2 are TEX header bytes preserved verbatim.
	Unknown1 uint8
	Unknown2 uint8

	// MipCount is the mip count declared by a DDS header, re-emitted on
	// encode. Zero means one.
	MipCount uint32

	// Trailing holds DDS bytes past the top level (additional mip
	// data), preserved opaquely and re-emitted verbatim.
	Trailing []byte
}

// TopLevel returns the top-resolution payload: the last level when a
// TEX mip chain is present (smallest-first storage), the first
// otherwise.
func (c *Container) TopLevel() []byte {
	if c.HasMipChain {
		return c.Levels[len(c.Levels)-1]
	}
	return c.Levels[0]
}

// Image decodes the container's top-resolution payload into RGBA
// pixels. Recognized but undecodable formats (the ETC family) fail
// with ErrUnsupportedFormat.
func (c *Container) Image() (*Image, error) {
	if len(c.Levels) == 0 {
		return nil, ErrEmptyLevels
	}

	pixels, err := decodeSurface(c.TopLevel(), c.Width, c.Height, c.Format)
	if err != nil {
		return nil, err
	}

	return &Image{
		Width:  c.Width,
		Height: c.Height,
		Format: c.Format,
		Pixels: pixels,
	}, nil
}

// Image is a decoded texture: a flat RGBA buffer of Width*Height*4
// bytes, row-major, top row first. Format records the source encoding.
type Image struct {
	Width  int
	Height int
	Format Format
	Pixels []byte
}

// NRGBA wraps the pixel buffer as a stdlib image without copying.
func (img *Image) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    img.Pixels,
		Stride: img.Width * 4,
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}
}

// ImageFrom converts any stdlib image into an Image with an owned RGBA
// buffer.
func ImageFrom(src image.Image) *Image {
	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Rect, src, bounds.Min, draw.Src)

	return &Image{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pixels: dst.Pix,
	}
}

// Decode auto-detects the container kind by magic bytes and decodes the
// top-resolution level into an Image.
func Decode(data []byte) (*Image, error) {
	c, err := DecodeContainer(data)
	if err != nil {
		return nil, err
	}
	return c.Image()
}

// DecodeContainer auto-detects the container kind by magic bytes and
// parses it without decompressing pixel data.
func DecodeContainer(data []byte) (*Container, error) {
	if len(data) >= 4 {
		switch binary.LittleEndian.Uint32(data[0:4]) {
		case texMagic:
			return DecodeTex(data)
		case ddsMagic:
			return DecodeDDS(data)
		}
	}
	return nil, fmt.Errorf("%w: no TEX or DDS magic", ErrUnsupportedFormat)
}

// DecodeConfig returns the dimensions and color model of a texture
// without decoding pixel data.
func DecodeConfig(data []byte) (image.Config, error) {
	c, err := DecodeContainer(data)
	if err != nil {
		return image.Config{}, err
	}

	return image.Config{
		Width:      c.Width,
		Height:     c.Height,
		ColorModel: color.NRGBAModel,
	}, nil
}

// Encode compresses an Image into a single-level container of the
// requested kind and format.
func Encode(img *Image, kind ContainerKind, format Format) ([]byte, error) {
	c, err := containerFromImage(img, format, false)
	if err != nil {
		return nil, err
	}

	switch kind {
	case ContainerTEX:
		return EncodeTex(c)
	case ContainerDDS:
		return EncodeDDS(c)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, kind)
	}
}

// EncodeTexWithMipChain compresses an Image into a TEX container with a
// full mip chain synthesized from the top level.
func EncodeTexWithMipChain(img *Image, format Format) ([]byte, error) {
	c, err := containerFromImage(img, format, true)
	if err != nil {
		return nil, err
	}
	return EncodeTex(c)
}

// containerFromImage compresses pixels into container levels. With
// mipChain set, every level of the full chain is encoded, stored
// smallest first to match TEX framing.
func containerFromImage(img *Image, format Format, mipChain bool) (*Container, error) {
	if img.Width < 1 || img.Height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, img.Width, img.Height)
	}

	c := &Container{
		Width:       img.Width,
		Height:      img.Height,
		Format:      format,
		HasMipChain: mipChain,
	}

	if !mipChain {
		level, err := encodeSurface(img.Pixels, img.Width, img.Height, format)
		if err != nil {
			return nil, err
		}
		c.Levels = [][]byte{level}
		return c, nil
	}

	count := mipCount(img.Width, img.Height)
	chain := generateMipChain(img.Pixels, img.Width, img.Height, count)

	c.Levels = make([][]byte, 0, count)
	for i := count - 1; i >= 0; i-- {
		level, err := encodeSurface(chain[i], mipDimension(img.Width, i), mipDimension(img.Height, i), format)
		if err != nil {
			return nil, err
		}
		c.Levels = append(c.Levels, level)
	}

	return c, nil
}
