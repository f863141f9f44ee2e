package ritotex

import (
	"encoding/binary"
	"fmt"
)

// texMagic is the little-endian "TEX\x00" signature.
const texMagic = 0x00584554

// texHeaderSize is the fixed TEX header length in bytes.
const texHeaderSize = 12

// DecodeTex parses a TEX byte stream into a Container. When the header
// declares a mip chain for a decodable format, levels are read in their
// on-disk order, smallest first; otherwise all body bytes form a single
// level. The input is never retained.
func DecodeTex(data []byte) (*Container, error) {
	if len(data) < texHeaderSize {
		return nil, fmt.Errorf("%w: TEX header needs %d bytes, have %d",
			ErrTruncatedData, texHeaderSize, len(data))
	}

	if magic := binary.LittleEndian.Uint32(data[0:4]); magic != texMagic {
		return nil, fmt.Errorf("%w: TEX magic 0x%08x", ErrInvalidSignature, magic)
	}

	width := int(binary.LittleEndian.Uint16(data[4:6]))
	height := int(binary.LittleEndian.Uint16(data[6:8]))
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	format, err := texTagToFormat(data[9])
	if err != nil {
		return nil, err
	}

	c := &Container{
		Width:       width,
		Height:      height,
		Format:      format,
		HasMipChain: data[11] != 0,
		Unknown1:    data[8],
		Unknown2:    data[10],
	}

	body := data[texHeaderSize:]

	if c.HasMipChain && format.Decodable() {
		count := mipCount(width, height)
		c.Levels = make([][]byte, 0, count)
		offset := texHeaderSize
		for i := count - 1; i >= 0; i-- {
			curW := mipDimension(width, i)
			curH := mipDimension(height, i)
			size, err := levelDataLengthChecked(format, curW, curH)
			if err != nil {
				return nil, err
			}
			if len(body) < size {
				return nil, fmt.Errorf("%w: mip level %d at offset %d needs %d bytes, have %d",
					ErrTruncatedData, i, offset, size, len(body))
			}
			level := make([]byte, size)
			copy(level, body[:size])
			c.Levels = append(c.Levels, level)
			body = body[size:]
			offset += size
		}
		if len(body) != 0 {
			return nil, fmt.Errorf("%w: %d bytes past the mip chain at offset %d",
				ErrTruncatedData, len(body), offset)
		}
		return c, nil
	}

	if format.Decodable() {
		size, err := levelDataLengthChecked(format, width, height)
		if err != nil {
			return nil, err
		}
		if len(body) != size {
			return nil, fmt.Errorf("%w: %s %dx%d level needs %d bytes, have %d",
				ErrTruncatedData, format, width, height, size, len(body))
		}
	}

	level := make([]byte, len(body))
	copy(level, body)
	c.Levels = [][]byte{level}

	return c, nil
}

// EncodeTex frames a Container as a TEX byte stream: the 12-byte header
// followed by every level in stored order. Encoding an unmodified
// decoded container reproduces the original bytes.
func EncodeTex(c *Container) ([]byte, error) {
	if len(c.Levels) == 0 {
		return nil, ErrEmptyLevels
	}

	w16, err := u16FromInt(c.Width)
	if err != nil || c.Width < 1 {
		return nil, fmt.Errorf("%w: width %d", ErrInvalidDimensions, c.Width)
	}
	h16, err := u16FromInt(c.Height)
	if err != nil || c.Height < 1 {
		return nil, fmt.Errorf("%w: height %d", ErrInvalidDimensions, c.Height)
	}

	tag, err := formatToTexTag(c.Format)
	if err != nil {
		return nil, err
	}

	total := texHeaderSize
	for _, level := range c.Levels {
		total += len(level)
	}

	out := make([]byte, texHeaderSize, total)
	binary.LittleEndian.PutUint32(out[0:4], texMagic)
	binary.LittleEndian.PutUint16(out[4:6], w16)
	binary.LittleEndian.PutUint16(out[6:8], h16)
	out[8] = c.Unknown1
	out[9] = tag
	out[10] = c.Unknown2
	if c.HasMipChain {
		out[11] = 1
	}

	for _, level := range c.Levels {
		out = append(out, level...)
	}

	return out, nil
}
