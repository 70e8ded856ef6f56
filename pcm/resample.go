// SPDX-License-Identifier: EPL-2.0

package pcm

// Resample converts a mono buffer of little-endian samples from srcRate to
// dstRate using Catmull-Rom cubic interpolation. The sample width is
// preserved.
func Resample(buf []byte, width, srcRate, dstRate int) ([]byte, error) {
	if !validWidth(width) {
		return nil, ErrInvalidSampleWidth
	}
	if len(buf)%width != 0 {
		return nil, ErrPartialSample
	}
	if srcRate <= 0 || dstRate <= 0 {
		return nil, ErrInvalidRate
	}
	if srcRate == dstRate {
		out := make([]byte, len(buf))
		copy(out, buf)
		return out, nil
	}

	frames := len(buf) / width
	if frames == 0 {
		return []byte{}, nil
	}

	samples := make([]float64, frames)
	for i := range frames {
		samples[i] = float64(readSample(buf[i*width:], width))
	}

	// frame at index i reads source position i * srcRate/dstRate
	ratio := float64(srcRate) / float64(dstRate)
	outFrames := frames * dstRate / srcRate
	if outFrames == 0 {
		outFrames = 1
	}

	at := func(i int) float64 {
		if i < 0 {
			return samples[0]
		}
		if i >= frames {
			return samples[frames-1]
		}
		return samples[i]
	}

	out := make([]byte, outFrames*width)
	for i := range outFrames {
		pos := float64(i) * ratio
		base := int(pos)
		x := pos - float64(base)

		y0 := at(base - 1)
		y1 := at(base)
		y2 := at(base + 1)
		y3 := at(base + 2)

		v := cubicInterpolate(y0, y1, y2, y3, x)
		putSample(out[i*width:], width, clampSample(int64(v), width))
	}

	return out, nil
}

// cubicInterpolate evaluates a Catmull-Rom spline through four consecutive
// samples at fractional position x between y1 and y2 (0 <= x <= 1).
func cubicInterpolate(y0, y1, y2, y3, x float64) float64 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1

	return a0*x*x*x + a1*x*x + a2*x + a3
}
