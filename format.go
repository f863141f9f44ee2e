package ritotex

import "fmt"

// Format identifies the pixel encoding of a texture payload.
type Format uint8

const (
	// FormatUnknown is the zero value; never valid in a container.
	FormatUnknown Format = iota
	// FormatETC1 is recognized in TEX headers but cannot be decoded.
	FormatETC1
	// FormatETC2EAC is recognized in TEX headers but cannot be decoded.
	FormatETC2EAC
	// FormatETC2 is recognized in TEX headers but cannot be decoded.
	FormatETC2
	// FormatBC1 is DXT1 block compression, 8 bytes per 4x4 block.
	FormatBC1
	// FormatBC3 is DXT5 block compression, 16 bytes per 4x4 block.
	FormatBC3
	// FormatBGRA8 is uncompressed 32-bit BGRA color.
	FormatBGRA8
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case FormatETC1:
		return "ETC1"
	case FormatETC2EAC:
		return "ETC2-EAC"
	case FormatETC2:
		return "ETC2"
	case FormatBC1:
		return "BC1"
	case FormatBC3:
		return "BC3"
	case FormatBGRA8:
		return "BGRA8"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// Compressed reports whether the format is block compressed.
func (f Format) Compressed() bool {
	return f == FormatBC1 || f == FormatBC3
}

// Decodable reports whether the package can decode payloads of this format.
func (f Format) Decodable() bool {
	switch f {
	case FormatBC1, FormatBC3, FormatBGRA8:
		return true
	default:
		return false
	}
}

// blockBytes returns the size of one 4x4 block, or 0 for non-block formats.
func (f Format) blockBytes() int {
	switch f {
	case FormatBC1:
		return 8
	case FormatBC3:
		return 16
	default:
		return 0
	}
}

// TEX on-disk format tags.
const (
	texFormatETC1    = 0x01
	texFormatETC2EAC = 0x02
	texFormatETC2    = 0x03
	texFormatBC1     = 0x0A
	texFormatBC3     = 0x0C
	texFormatBGRA8   = 0x14
)

// texTagToFormat maps a TEX header format byte onto the shared enum.
func texTagToFormat(tag uint8) (Format, error) {
	switch tag {
	case texFormatETC1:
		return FormatETC1, nil
	case texFormatETC2EAC:
		return FormatETC2EAC, nil
	case texFormatETC2:
		return FormatETC2, nil
	case texFormatBC1:
		return FormatBC1, nil
	case texFormatBC3:
		return FormatBC3, nil
	case texFormatBGRA8:
		return FormatBGRA8, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: TEX format tag 0x%02x", ErrUnsupportedFormat, tag)
	}
}

// formatToTexTag maps the shared enum back to a TEX header format byte.
func formatToTexTag(f Format) (uint8, error) {
	switch f {
	case FormatETC1:
		return texFormatETC1, nil
	case FormatETC2EAC:
		return texFormatETC2EAC, nil
	case FormatETC2:
		return texFormatETC2, nil
	case FormatBC1:
		return texFormatBC1, nil
	case FormatBC3:
		return texFormatBC3, nil
	case FormatBGRA8:
		return texFormatBGRA8, nil
	default:
		return 0, fmt.Errorf("%w: %s has no TEX tag", ErrUnsupportedFormat, f)
	}
}

// levelDataLength returns the byte length of one level with the given
// dimensions, or -1 when the format has no fixed payload size.
func levelDataLength(f Format, width, height int) int {
	blocksW := (width + 3) / 4
	blocksH := (height + 3) / 4
	switch f {
	case FormatBC1:
		return blocksW * blocksH * 8
	case FormatBC3:
		return blocksW * blocksH * 16
	case FormatBGRA8:
		return width * height * 4
	default:
		return -1
	}
}

// levelDataLengthChecked computes levelDataLength in overflow-guarded
// arithmetic for dimensions read from untrusted container headers.
func levelDataLengthChecked(f Format, width, height int) (int, error) {
	if width > maxUint16 || height > maxUint16 {
		return 0, fmt.Errorf("%w: %dx%d", ErrSizeOverflow, width, height)
	}

	blocksW := (uint64(width) + 3) / 4
	blocksH := (uint64(height) + 3) / 4

	var size uint64
	switch f {
	case FormatBC1:
		size = blocksW * blocksH * 8
	case FormatBC3:
		size = blocksW * blocksH * 16
	case FormatBGRA8:
		size = uint64(width) * uint64(height) * 4
	default:
		return 0, fmt.Errorf("%w: cannot size %s", ErrUnsupportedFormat, f)
	}

	if size > uint64(maxInt32) {
		return 0, fmt.Errorf("%w: %s %dx%d level needs %d bytes", ErrSizeOverflow, f, width, height, size)
	}

	return int(size), nil
}
