package ritotex

import "encoding/binary"

// bc3AlphaPalette builds the 8-entry alpha ramp for a BC3 alpha sub-block.
// a0 > a1 selects the six-step interpolated ramp; otherwise a shorter
// four-step ramp with explicit 0 and 255 entries.
func bc3AlphaPalette(a0, a1 uint8) [8]uint8 {
	var p [8]uint8
	p[0] = a0
	p[1] = a1

	if a0 > a1 {
		for i := 1; i <= 6; i++ {
			p[i+1] = uint8(((7-i)*int(a0) + i*int(a1)) / 7)
		}
		return p
	}

	for i := 1; i <= 4; i++ {
		p[i+1] = uint8(((5-i)*int(a0) + i*int(a1)) / 5)
	}
	p[6] = 0
	p[7] = 255

	return p
}

// alphaIndexField assembles the 48-bit alpha index field from block
// bytes 2..7, texel 0 in the lowest 3 bits.
func alphaIndexField(block []byte) uint64 {
	var field uint64
	for i := 0; i < 6; i++ {
		field |= uint64(block[2+i]) << (8 * uint(i))
	}
	return field
}

// decodeBC3Block decodes one 16-byte BC3 block into 16 RGBA texels in
// row-major block order. The color sub-block always uses the four-color
// interpolated palette; punch-through does not apply to BC3.
func decodeBC3Block(block []byte, texels *[64]uint8) {
	a0, a1 := block[0], block[1]
	alphaPalette := bc3AlphaPalette(a0, a1)
	alphaIndices := alphaIndexField(block)

	c0 := binary.LittleEndian.Uint16(block[8:10])
	c1 := binary.LittleEndian.Uint16(block[10:12])
	colorIndices := binary.LittleEndian.Uint32(block[12:16])

	colorPalette := bc1Palette(c0, c1, true)

	for i := 0; i < 16; i++ {
		entry := colorPalette[colorIndices>>(2*uint(i))&0x3]
		copy(texels[i*4:i*4+4], entry[:])
		texels[i*4+3] = alphaPalette[alphaIndices>>(3*uint(i))&0x7]
	}
}

// nearestAlphaIndex returns the ramp entry closest to a by absolute
// difference, lowest index winning ties.
func nearestAlphaIndex(palette *[8]uint8, a uint8) uint64 {
	best := uint64(0)
	bestDist := -1
	for i := 0; i < 8; i++ {
		dist := int(palette[i]) - int(a)
		if dist < 0 {
			dist = -dist
		}
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = uint64(i)
		}
	}
	return best
}

// encodeBC3Block compresses 16 RGBA texels into one 16-byte BC3 block.
// Alpha endpoints are the block's max and min alpha, keeping the
// six-step ramp whenever alphas differ; the color sub-block uses the
// same endpoint heuristic as BC1 with the four-color palette.
func encodeBC3Block(texels *[64]uint8, block []byte) {
	a0, a1 := texels[3], texels[3]
	for i := 1; i < 16; i++ {
		a := texels[i*4+3]
		if a > a0 {
			a0 = a
		}
		if a < a1 {
			a1 = a
		}
	}

	alphaPalette := bc3AlphaPalette(a0, a1)
	var alphaIndices uint64
	for i := 0; i < 16; i++ {
		idx := nearestAlphaIndex(&alphaPalette, texels[i*4+3])
		alphaIndices |= idx << (3 * uint(i))
	}

	block[0], block[1] = a0, a1
	for i := 0; i < 6; i++ {
		block[2+i] = uint8(alphaIndices >> (8 * uint(i)))
	}

	c0, c1 := blockEndpoints(texels)
	colorPalette := bc1Palette(c0, c1, true)

	var colorIndices uint32
	for i := 0; i < 16; i++ {
		idx := nearestPaletteIndex(&colorPalette, texels[i*4], texels[i*4+1], texels[i*4+2])
		colorIndices |= idx << (2 * uint(i))
	}

	binary.LittleEndian.PutUint16(block[8:10], c0)
	binary.LittleEndian.PutUint16(block[10:12], c1)
	binary.LittleEndian.PutUint32(block[12:16], colorIndices)
}
