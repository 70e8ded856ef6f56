// SPDX-License-Identifier: EPL-2.0

package pcm

// readSample decodes one little-endian signed sample of the given width.
func readSample(b []byte, width int) int32 {
	switch width {
	case 1:
		return int32(int8(b[0]))
	case 2:
		return int32(int16(uint16(b[0]) | uint16(b[1])<<8))
	case 3:
		v := int32(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16)
		// sign-extend from 24 bits
		if v&0x800000 != 0 {
			v |= ^int32(0xffffff)
		}
		return v
	default:
		return int32(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24)
	}
}

// putSample encodes one little-endian signed sample of the given width.
func putSample(b []byte, width int, v int32) {
	switch width {
	case 1:
		b[0] = byte(v)
	case 2:
		b[0] = byte(v)
		b[1] = byte(v >> 8)
	case 3:
		b[0] = byte(v)
		b[1] = byte(v >> 8)
		b[2] = byte(v >> 16)
	default:
		b[0] = byte(v)
		b[1] = byte(v >> 8)
		b[2] = byte(v >> 16)
		b[3] = byte(v >> 24)
	}
}

// sampleRange returns the minimum and maximum representable values for a
// signed sample of the given width.
func sampleRange(width int) (int64, int64) {
	bits := uint(width*8 - 1)
	max := int64(1)<<bits - 1
	return -max - 1, max
}

// clampSample clips v to the representable range of the given width.
func clampSample(v int64, width int) int32 {
	lo, hi := sampleRange(width)
	if v < lo {
		v = lo
	} else if v > hi {
		v = hi
	}
	return int32(v)
}

func validWidth(width int) bool {
	return width >= 1 && width <= 4
}
