package ritotex

import "encoding/binary"

// rgb565 expands a packed 5-6-5 color to 8-bit channels.
func rgb565(c uint16) (r, g, b uint8) {
	r = uint8(c>>11&0x1F) << 3
	g = uint8(c>>5&0x3F) << 2
	b = uint8(c&0x1F) << 3
	return r, g, b
}

// quant565 packs 8-bit channels into 5-6-5 layout.
func quant565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// bc1Palette builds the 4-entry RGBA palette for a BC1 color sub-block.
// With fourColor forced (the BC3 color path) entries 2 and 3 are always
// the 1/3 and 2/3 interpolants; otherwise c0 <= c1 selects the
// punch-through variant with a transparent entry 3.
func bc1Palette(c0, c1 uint16, fourColor bool) [4][4]uint8 {
	var p [4][4]uint8

	r0, g0, b0 := rgb565(c0)
	r1, g1, b1 := rgb565(c1)
	p[0] = [4]uint8{r0, g0, b0, 255}
	p[1] = [4]uint8{r1, g1, b1, 255}

	if fourColor || c0 > c1 {
		p[2] = [4]uint8{
			uint8((2*uint16(r0) + uint16(r1)) / 3),
			uint8((2*uint16(g0) + uint16(g1)) / 3),
			uint8((2*uint16(b0) + uint16(b1)) / 3),
			255,
		}
		p[3] = [4]uint8{
			uint8((uint16(r0) + 2*uint16(r1)) / 3),
			uint8((uint16(g0) + 2*uint16(g1)) / 3),
			uint8((uint16(b0) + 2*uint16(b1)) / 3),
			255,
		}
		return p
	}

	p[2] = [4]uint8{
		uint8((uint16(r0) + uint16(r1)) / 2),
		uint8((uint16(g0) + uint16(g1)) / 2),
		uint8((uint16(b0) + uint16(b1)) / 2),
		255,
	}
	p[3] = [4]uint8{0, 0, 0, 0}

	return p
}

// decodeBC1Block decodes one 8-byte BC1 block into 16 RGBA texels in
// row-major block order. Edge clipping is the caller's concern.
func decodeBC1Block(block []byte, texels *[64]uint8) {
	c0 := binary.LittleEndian.Uint16(block[0:2])
	c1 := binary.LittleEndian.Uint16(block[2:4])
	indices := binary.LittleEndian.Uint32(block[4:8])

	palette := bc1Palette(c0, c1, false)

	for i := 0; i < 16; i++ {
		entry := palette[indices>>(2*uint(i))&0x3]
		copy(texels[i*4:i*4+4], entry[:])
	}
}

// luma is the endpoint-selection score; green weighs heaviest.
func luma(r, g, b uint8) int {
	return 2*int(r) + 4*int(g) + int(b)
}

// blockEndpoints picks the packed 5-6-5 endpoints for a block of 16 RGBA
// texels: the highest-luminance texel becomes c0, the lowest c1, swapped
// if the quantized values would invert so that c0 >= c1 and the
// four-color palette stays selected.
func blockEndpoints(texels *[64]uint8) (c0, c1 uint16) {
	maxScore, minScore := -1, -1
	for i := 0; i < 16; i++ {
		r, g, b := texels[i*4], texels[i*4+1], texels[i*4+2]
		score := luma(r, g, b)
		if maxScore < 0 || score > maxScore {
			maxScore = score
			c0 = quant565(r, g, b)
		}
		if minScore < 0 || score < minScore {
			minScore = score
			c1 = quant565(r, g, b)
		}
	}
	if c0 < c1 {
		c0, c1 = c1, c0
	}
	return c0, c1
}

// nearestPaletteIndex returns the palette entry with the smallest squared
// RGB distance to the texel, lowest index winning ties.
func nearestPaletteIndex(palette *[4][4]uint8, r, g, b uint8) uint32 {
	best := uint32(0)
	bestDist := -1
	for i := 0; i < 4; i++ {
		dr := int(palette[i][0]) - int(r)
		dg := int(palette[i][1]) - int(g)
		db := int(palette[i][2]) - int(b)
		dist := dr*dr + dg*dg + db*db
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = uint32(i)
		}
	}
	return best
}

// encodeBC1Block compresses 16 RGBA texels into one 8-byte BC1 block
// using the min/max-luminance endpoint heuristic.
func encodeBC1Block(texels *[64]uint8, block []byte) {
	c0, c1 := blockEndpoints(texels)
	palette := bc1Palette(c0, c1, false)

	var indices uint32
	for i := 0; i < 16; i++ {
		idx := nearestPaletteIndex(&palette, texels[i*4], texels[i*4+1], texels[i*4+2])
		indices |= idx << (2 * uint(i))
	}

	binary.LittleEndian.PutUint16(block[0:2], c0)
	binary.LittleEndian.PutUint16(block[2:4], c1)
	binary.LittleEndian.PutUint32(block[4:8], indices)
}
