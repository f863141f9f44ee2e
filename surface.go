package ritotex

import "fmt"

// decodeSurface expands one level payload into a flat row-major RGBA
// buffer of width*height*4 bytes. Block formats are walked block by
// block with texels outside the image silently dropped; BGRA8 is a
// per-pixel channel reorder.
func decodeSurface(data []byte, width, height int, format Format) ([]byte, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	expected := levelDataLength(format, width, height)
	if expected < 0 {
		return nil, fmt.Errorf("%w: cannot decode %s", ErrUnsupportedFormat, format)
	}
	if len(data) != expected {
		return nil, fmt.Errorf("%w: %s %dx%d needs %d bytes, have %d",
			ErrTruncatedData, format, width, height, expected, len(data))
	}

	out := make([]byte, width*height*4)

	if format == FormatBGRA8 {
		for i := 0; i < len(data); i += 4 {
			out[i] = data[i+2]
			out[i+1] = data[i+1]
			out[i+2] = data[i]
			out[i+3] = data[i+3]
		}
		return out, nil
	}

	blockSize := format.blockBytes()
	blocksW := (width + 3) / 4
	blocksH := (height + 3) / 4

	var texels [64]uint8
	for by := 0; by < blocksH; by++ {
		for bx := 0; bx < blocksW; bx++ {
			block := data[(by*blocksW+bx)*blockSize:]
			switch format {
			case FormatBC1:
				decodeBC1Block(block[:8], &texels)
			case FormatBC3:
				decodeBC3Block(block[:16], &texels)
			}

			for py := 0; py < 4; py++ {
				y := by*4 + py
				if y >= height {
					break
				}
				for px := 0; px < 4; px++ {
					x := bx*4 + px
					if x >= width {
						break
					}
					src := (py*4 + px) * 4
					dst := (y*width + x) * 4
					copy(out[dst:dst+4], texels[src:src+4])
				}
			}
		}
	}

	return out, nil
}

// encodeSurface compresses a flat row-major RGBA buffer into one level
// payload. Trailing partial blocks are padded with zero texels, so the
// result is always blocksW*blocksH*blockBytes for block formats.
func encodeSurface(pixels []byte, width, height int, format Format) ([]byte, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("%w: %dx%d needs %d bytes, have %d",
			ErrBufferSize, width, height, width*height*4, len(pixels))
	}

	if format == FormatBGRA8 {
		out := make([]byte, len(pixels))
		for i := 0; i < len(pixels); i += 4 {
			out[i] = pixels[i+2]
			out[i+1] = pixels[i+1]
			out[i+2] = pixels[i]
			out[i+3] = pixels[i+3]
		}
		return out, nil
	}

	blockSize := format.blockBytes()
	if blockSize == 0 {
		return nil, fmt.Errorf("%w: cannot encode %s", ErrUnsupportedFormat, format)
	}

	blocksW := (width + 3) / 4
	blocksH := (height + 3) / 4
	out := make([]byte, blocksW*blocksH*blockSize)

	var texels [64]uint8
	for by := 0; by < blocksH; by++ {
		for bx := 0; bx < blocksW; bx++ {
			texels = [64]uint8{}
			for py := 0; py < 4; py++ {
				y := by*4 + py
				if y >= height {
					break
				}
				for px := 0; px < 4; px++ {
					x := bx*4 + px
					if x >= width {
						break
					}
					src := (y*width + x) * 4
					dst := (py*4 + px) * 4
					copy(texels[dst:dst+4], pixels[src:src+4])
				}
			}

			block := out[(by*blocksW+bx)*blockSize:]
			switch format {
			case FormatBC1:
				encodeBC1Block(&texels, block[:8])
			case FormatBC3:
				encodeBC3Block(&texels, block[:16])
			}
		}
	}

	return out, nil
}
