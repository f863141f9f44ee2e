package ritotex

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// ddsMagic is the little-endian "DDS " signature.
const ddsMagic = 0x20534444

const (
	ddsHeaderSize      = 124
	ddsPixelFormatSize = 32
	ddsDX10HeaderSize  = 20
)

// DDS header flags.
const (
	ddsFlagCaps        = 0x00000001
	ddsFlagHeight      = 0x00000002
	ddsFlagWidth       = 0x00000004
	ddsFlagPitch       = 0x00000008
	ddsFlagPixelFormat = 0x00001000
	ddsFlagMipMapCount = 0x00020000
	ddsFlagLinearSize  = 0x00080000
)

// DDS pixel format flags.
const (
	ddsPFAlphaPixels = 0x00000001
	ddsPFFourCC      = 0x00000004
	ddsPFRGB         = 0x00000040
)

// DDS caps.
const (
	ddsCapsComplex = 0x00000008
	ddsCapsTexture = 0x00001000
	ddsCapsMipmap  = 0x00400000
)

// DXGI format codes understood by the DX10 extended header path.
const (
	dxgiFormatBC1Unorm = 71
	dxgiFormatBC3Unorm = 77
)

type ddsPixelFormat struct {
	Size        uint32
	Flags       uint32
	FourCC      uint32
	RGBBitCount uint32
	RBitMask    uint32
	GBitMask    uint32
	BBitMask    uint32
	ABitMask    uint32
}

type ddsHeader struct {
	Size              uint32
	Flags             uint32
	Height            uint32
	Width             uint32
	PitchOrLinearSize uint32
	Depth             uint32
	MipMapCount       uint32
	Reserved1         [11]uint32
	PixelFormat       ddsPixelFormat
	Caps              uint32
	Caps2             uint32
	Caps3             uint32
	Caps4             uint32
	Reserved2         uint32
}

type ddsHeaderDX10 struct {
	DXGIFormat        uint32
	ResourceDimension uint32
	MiscFlag          uint32
	ArraySize         uint32
	MiscFlags2        uint32
}

func makeFourCC(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}

func fourCCString(value uint32) string {
	return string([]byte{
		byte(value),
		byte(value >> 8),
		byte(value >> 16),
		byte(value >> 24),
	})
}

// DecodeDDS parses a DDS byte stream into a Container holding the
// top-resolution payload. Classic FourCC, DX10 extended, and
// uncompressed 32-bit paths are recognized. Any bytes past the top
// level (additional on-disk mips) are preserved opaquely in Trailing
// and never parsed; this codec deliberately handles only the top level.
func DecodeDDS(data []byte) (*Container, error) {
	if len(data) < 4+ddsHeaderSize {
		return nil, fmt.Errorf("%w: DDS header needs %d bytes, have %d",
			ErrTruncatedData, 4+ddsHeaderSize, len(data))
	}

	if magic := binary.LittleEndian.Uint32(data[0:4]); magic != ddsMagic {
		return nil, fmt.Errorf("%w: DDS magic 0x%08x", ErrInvalidSignature, magic)
	}

	var header ddsHeader
	if err := binary.Read(bytes.NewReader(data[4:4+ddsHeaderSize]), binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: DDS header: %v", ErrTruncatedData, err)
	}
	if header.Size != ddsHeaderSize {
		return nil, fmt.Errorf("%w: DDS header size %d", ErrInvalidSignature, header.Size)
	}

	width := int(header.Width)
	height := int(header.Height)
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	body := data[4+ddsHeaderSize:]
	offset := 4 + ddsHeaderSize

	var format Format
	pf := header.PixelFormat
	switch {
	case pf.Flags&ddsPFFourCC != 0 && pf.FourCC == makeFourCC('D', 'X', 'T', '1'):
		format = FormatBC1
	case pf.Flags&ddsPFFourCC != 0 && pf.FourCC == makeFourCC('D', 'X', 'T', '5'):
		format = FormatBC3
	case pf.Flags&ddsPFFourCC != 0 && pf.FourCC == makeFourCC('D', 'X', '1', '0'):
		if len(body) < ddsDX10HeaderSize {
			return nil, fmt.Errorf("%w: DX10 header at offset %d needs %d bytes, have %d",
				ErrTruncatedData, offset, ddsDX10HeaderSize, len(body))
		}
		var dx10 ddsHeaderDX10
		if err := binary.Read(bytes.NewReader(body[:ddsDX10HeaderSize]), binary.LittleEndian, &dx10); err != nil {
			return nil, fmt.Errorf("%w: DX10 header: %v", ErrTruncatedData, err)
		}
		switch dx10.DXGIFormat {
		case dxgiFormatBC1Unorm:
			format = FormatBC1
		case dxgiFormatBC3Unorm:
			format = FormatBC3
		default:
			return nil, fmt.Errorf("%w: DXGI format %d", ErrUnsupportedFormat, dx10.DXGIFormat)
		}
		body = body[ddsDX10HeaderSize:]
		offset += ddsDX10HeaderSize
	case pf.Flags&ddsPFFourCC != 0:
		return nil, fmt.Errorf("%w: FourCC %q", ErrUnsupportedFormat, fourCCString(pf.FourCC))
	case pf.Flags&ddsPFRGB != 0 && pf.RGBBitCount == 32:
		format = FormatBGRA8
	default:
		return nil, fmt.Errorf("%w: pixel format flags 0x%08x", ErrUnsupportedFormat, pf.Flags)
	}

	size, err := levelDataLengthChecked(format, width, height)
	if err != nil {
		return nil, err
	}
	if len(body) < size {
		return nil, fmt.Errorf("%w: %s %dx%d level at offset %d needs %d bytes, have %d",
			ErrTruncatedData, format, width, height, offset, size, len(body))
	}

	level := make([]byte, size)
	copy(level, body[:size])
	trailing := make([]byte, len(body)-size)
	copy(trailing, body[size:])

	return &Container{
		Width:    width,
		Height:   height,
		Format:   format,
		Levels:   [][]byte{level},
		MipCount: header.MipMapCount,
		Trailing: trailing,
	}, nil
}

// EncodeDDS frames a Container as a DDS byte stream. Compressed formats
// use the classic FourCC path ("DXT1"/"DXT5"); the DX10 extended header
// is a decode-side capability only. Preserved Trailing bytes are
// re-emitted verbatim after the top level, with the header's mip count
// restored from MipCount.
func EncodeDDS(c *Container) ([]byte, error) {
	if len(c.Levels) == 0 {
		return nil, ErrEmptyLevels
	}
	if c.Width < 1 || c.Height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}

	w32, err := u32FromInt(c.Width)
	if err != nil {
		return nil, err
	}
	h32, err := u32FromInt(c.Height)
	if err != nil {
		return nil, err
	}

	size, err := levelDataLengthChecked(c.Format, c.Width, c.Height)
	if err != nil {
		return nil, err
	}
	if len(c.Levels[0]) != size {
		return nil, fmt.Errorf("%w: %s %dx%d level needs %d bytes, have %d",
			ErrTruncatedData, c.Format, c.Width, c.Height, size, len(c.Levels[0]))
	}

	size32, err := u32FromInt(size)
	if err != nil {
		return nil, err
	}

	header := ddsHeader{
		Size:        ddsHeaderSize,
		Flags:       ddsFlagCaps | ddsFlagHeight | ddsFlagWidth | ddsFlagPixelFormat,
		Height:      h32,
		Width:       w32,
		Depth:       1,
		MipMapCount: c.MipCount,
		Caps:        ddsCapsTexture,
	}
	header.PixelFormat.Size = ddsPixelFormatSize

	if header.MipMapCount == 0 {
		header.MipMapCount = 1
	}
	if header.MipMapCount > 1 {
		header.Flags |= ddsFlagMipMapCount
		header.Caps |= ddsCapsComplex | ddsCapsMipmap
	}

	switch c.Format {
	case FormatBC1:
		header.Flags |= ddsFlagLinearSize
		header.PitchOrLinearSize = size32
		header.PixelFormat.Flags = ddsPFFourCC
		header.PixelFormat.FourCC = makeFourCC('D', 'X', 'T', '1')
	case FormatBC3:
		header.Flags |= ddsFlagLinearSize
		header.PitchOrLinearSize = size32
		header.PixelFormat.Flags = ddsPFFourCC
		header.PixelFormat.FourCC = makeFourCC('D', 'X', 'T', '5')
	case FormatBGRA8:
		header.Flags |= ddsFlagPitch
		header.PitchOrLinearSize = w32 * 4
		header.PixelFormat.Flags = ddsPFRGB | ddsPFAlphaPixels
		header.PixelFormat.RGBBitCount = 32
		header.PixelFormat.RBitMask = 0x00ff0000
		header.PixelFormat.GBitMask = 0x0000ff00
		header.PixelFormat.BBitMask = 0x000000ff
		header.PixelFormat.ABitMask = 0xff000000
	default:
		return nil, fmt.Errorf("%w: cannot encode %s as DDS", ErrUnsupportedFormat, c.Format)
	}

	var buf bytes.Buffer
	buf.Grow(4 + ddsHeaderSize + size + len(c.Trailing))

	var magic [4]byte
	binary.LittleEndian.PutUint32(magic[:], ddsMagic)
	buf.Write(magic[:])
	if err := binary.Write(&buf, binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	buf.Write(c.Levels[0])
	buf.Write(c.Trailing)

	return buf.Bytes(), nil
}
