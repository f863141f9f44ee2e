package ritotex

import (
	"image"
	"math/bits"

	"golang.org/x/image/draw"
)

// mipCount returns the number of levels in a full mip chain for the
// given dimensions: floor(log2(max(width,height))) + 1.
func mipCount(width, height int) int {
	max := width
	if height > max {
		max = height
	}
	if max < 1 {
		return 0
	}
	return bits.Len(uint(max))
}

// mipDimension returns the dimension of a mipmap level, clamped to 1.
func mipDimension(base, level int) int {
	result := base >> level
	if result < 1 {
		return 1
	}

	return result
}

// generateMipChain downsamples a top-level RGBA buffer into the full
// chain of count levels, largest first. Level 0 aliases the input.
func generateMipChain(pixels []byte, width, height, count int) [][]byte {
	chain := make([][]byte, count)
	chain[0] = pixels

	src := &image.NRGBA{Pix: pixels, Stride: width * 4, Rect: image.Rect(0, 0, width, height)}
	for level := 1; level < count; level++ {
		w := mipDimension(width, level)
		h := mipDimension(height, level)
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.ApproxBiLinear.Scale(dst, dst.Rect, src, src.Rect, draw.Src, nil)
		chain[level] = dst.Pix
		src = dst
	}

	return chain
}
