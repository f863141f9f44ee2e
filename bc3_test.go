package ritotex

import "testing"

func TestBC3AlphaRampSixStep(t *testing.T) {
	got := bc3AlphaPalette(255, 0)
	want := [8]uint8{255, 0, 218, 182, 145, 109, 72, 36}
	if got != want {
		t.Fatalf("ramp %v, want %v", got, want)
	}
}

func TestBC3AlphaRampWithExtremes(t *testing.T) {
	// a0 <= a1 appends explicit fully-transparent and fully-opaque steps.
	got := bc3AlphaPalette(0, 255)
	if got[6] != 0 || got[7] != 255 {
		t.Fatalf("extreme entries (%d,%d), want (0,255)", got[6], got[7])
	}
	if got[0] != 0 || got[1] != 255 {
		t.Fatalf("endpoint entries (%d,%d), want (0,255)", got[0], got[1])
	}
}

func TestBC3AlphaIndexField(t *testing.T) {
	block := make([]byte, 16)
	// texel 0 -> index 5, texel 15 -> index 7
	field := uint64(5) | uint64(7)<<45
	for i := 0; i < 6; i++ {
		block[2+i] = byte(field >> (8 * uint(i)))
	}

	got := alphaIndexField(block)
	if got&0x7 != 5 {
		t.Fatalf("texel 0 index %d, want 5", got&0x7)
	}
	if got>>45&0x7 != 7 {
		t.Fatalf("texel 15 index %d, want 7", got>>45&0x7)
	}
}

func TestBC3SolidBlockExact(t *testing.T) {
	in := solidTexels(96, 164, 248, 200)

	var block [16]byte
	encodeBC3Block(&in, block[:])

	var out [64]uint8
	decodeBC3Block(block[:], &out)

	if out != in {
		t.Fatalf("solid block round-trip mismatch:\n in=%v\nout=%v", in, out)
	}
}

func TestBC3EncodeAlphaEndpoints(t *testing.T) {
	var texels [64]uint8
	for i := 0; i < 16; i++ {
		texels[i*4+3] = uint8(40 + i*10)
	}

	var block [16]byte
	encodeBC3Block(&texels, block[:])

	if block[0] != 190 || block[1] != 40 {
		t.Fatalf("alpha endpoints (%d,%d), want (190,40)", block[0], block[1])
	}
}

func TestBC3EncodeBoundedAlphaError(t *testing.T) {
	var texels [64]uint8
	for i := 0; i < 16; i++ {
		texels[i*4] = 128
		texels[i*4+1] = 128
		texels[i*4+2] = 128
		texels[i*4+3] = uint8(i * 17)
	}

	var block [16]byte
	encodeBC3Block(&texels, block[:])

	var out [64]uint8
	decodeBC3Block(block[:], &out)

	for i := 0; i < 16; i++ {
		diff := int(out[i*4+3]) - int(texels[i*4+3])
		if diff < 0 {
			diff = -diff
		}
		// 255/7 interpolation steps bound quantization error to half a step.
		if diff > 19 {
			t.Fatalf("texel %d: alpha error %d exceeds bound", i, diff)
		}
	}
}

func TestBC3ColorSubBlockAlwaysFourColor(t *testing.T) {
	// Equal color endpoints would select punch-through in BC1; BC3 must
	// still produce opaque interpolated entries.
	block := make([]byte, 16)
	block[0], block[1] = 255, 255 // solid alpha
	// c0 == c1 == black, color indices all entry 3
	for i := 12; i < 16; i++ {
		block[i] = 0xFF
	}

	var out [64]uint8
	decodeBC3Block(block, &out)

	for i := 0; i < 16; i++ {
		if out[i*4+3] != 255 {
			t.Fatalf("texel %d: alpha %d, want 255", i, out[i*4+3])
		}
	}
}
