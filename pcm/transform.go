// SPDX-License-Identifier: EPL-2.0

package pcm

// ByteSwap returns a copy of buf with the byte order of every width-byte
// sample reversed. Applying it twice yields the original buffer.
func ByteSwap(buf []byte, width int) ([]byte, error) {
	if !validWidth(width) {
		return nil, ErrInvalidSampleWidth
	}
	if len(buf)%width != 0 {
		return nil, ErrPartialSample
	}

	out := make([]byte, len(buf))
	for i := 0; i < len(buf); i += width {
		for j := range width {
			out[i+j] = buf[i+width-1-j]
		}
	}

	return out, nil
}

// Widen24To32 reinterprets a buffer of 3-byte little-endian samples as
// 4-byte little-endian samples by prepending a zero byte to each sample,
// scaling every amplitude by 256. The result is 4/3 the input size and
// must be treated as 4-byte audio from then on.
func Widen24To32(buf []byte) ([]byte, error) {
	if len(buf)%3 != 0 {
		return nil, ErrPartialSample
	}

	out := make([]byte, len(buf)/3*4)
	for i, o := 0, 0; i < len(buf); i, o = i+3, o+4 {
		out[o] = 0
		out[o+1] = buf[i]
		out[o+2] = buf[i+1]
		out[o+3] = buf[i+2]
	}

	return out, nil
}

// DownmixStereo averages each interleaved stereo sample pair into one mono
// sample of the same width. The result is half the input size.
func DownmixStereo(buf []byte, width int) ([]byte, error) {
	if !validWidth(width) {
		return nil, ErrInvalidSampleWidth
	}
	if len(buf)%(2*width) != 0 {
		return nil, ErrPartialSample
	}

	out := make([]byte, len(buf)/2)
	for i, o := 0, 0; i < len(buf); i, o = i+2*width, o+width {
		l := int64(readSample(buf[i:], width))
		r := int64(readSample(buf[i+width:], width))
		putSample(out[o:], width, int32((l+r)/2))
	}

	return out, nil
}

// ConvertWidth rescales every sample from one width to another by shifting
// amplitudes, preserving the waveform shape. Converting down discards the
// low-order bits.
func ConvertWidth(buf []byte, from, to int) ([]byte, error) {
	if !validWidth(from) || !validWidth(to) {
		return nil, ErrInvalidSampleWidth
	}
	if len(buf)%from != 0 {
		return nil, ErrPartialSample
	}
	if from == to {
		out := make([]byte, len(buf))
		copy(out, buf)
		return out, nil
	}

	out := make([]byte, len(buf)/from*to)
	for i, o := 0, 0; i < len(buf); i, o = i+from, o+to {
		v := readSample(buf[i:], from)
		if to > from {
			v <<= uint(8 * (to - from))
		} else {
			v >>= uint(8 * (from - to))
		}
		putSample(out[o:], to, v)
	}

	return out, nil
}
