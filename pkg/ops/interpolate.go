package ops

import (
	"context"
	"image"

	"github.com/bryanchance/framekit"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

const (
	// InterpolateFlow estimates global motion between frames and blends
	// motion-compensated copies
	InterpolateFlow = "flow"
	// InterpolateBlend blends adjacent frames without motion compensation
	InterpolateBlend = "blend"
)

// Interpolate inserts a midpoint frame between every consecutive pair of
// frames. Originals keep the even indices of the result; interpolated frames
// take the odd indices, so N frames become 2N-1.
func Interpolate(ctx context.Context, workers int, frames []image.Image, mode string) ([]image.Image, error) {
	var interp func(a, b image.Image) (image.Image, error)
	switch mode {
	case InterpolateBlend:
		interp = func(a, b image.Image) (image.Image, error) {
			return Blend(a, b), nil
		}
	case InterpolateFlow:
		interp = flowMidpoint
	default:
		return nil, errors.Wrapf(framekit.ErrInvalidMode, "interpolation mode %q", mode)
	}

	type pair struct {
		a, b image.Image
	}
	pairs := make([]pair, 0)
	for i := 0; i+1 < len(frames); i++ {
		pairs = append(pairs, pair{frames[i], frames[i+1]})
	}

	mids, err := Parallel(ctx, workers, pairs, func(p pair) (image.Image, error) {
		return interp(p.a, p.b)
	})
	if err != nil {
		return nil, err
	}

	out := make([]image.Image, 0, len(frames)+len(mids))
	for i, f := range frames {
		out = append(out, f)
		if i < len(mids) {
			out = append(out, mids[i])
		}
	}
	return out, nil
}

// flowMidpoint estimates the dominant translation between the two frames and
// blends copies shifted halfway toward each other
func flowMidpoint(a, b image.Image) (image.Image, error) {
	dx, dy := estimateShift(a, b)
	half := Blend(
		translate(a, dx/2, dy/2),
		translate(b, -dx/2, -dy/2),
	)
	return half, nil
}

const (
	shiftSampleWidth = 128
	shiftSearchRange = 8
)

// estimateShift finds the translation (in full-resolution pixels) that best
// aligns frame a to frame b, using a grayscale sum-of-absolute-differences
// search over a downsampled copy. Ties keep the zero shift.
func estimateShift(a, b image.Image) (int, int) {
	srcWidth := a.Bounds().Dx()
	if srcWidth == 0 {
		return 0, 0
	}
	sampleWidth := shiftSampleWidth
	if srcWidth < sampleWidth {
		sampleWidth = srcWidth
	}
	ga := imaging.Grayscale(imaging.Resize(a, sampleWidth, 0, imaging.Box))
	gb := imaging.Grayscale(imaging.Resize(b, sampleWidth, 0, imaging.Box))

	bestDX, bestDY := 0, 0
	best := sad(ga, gb, 0, 0)
	for dy := -shiftSearchRange; dy <= shiftSearchRange; dy++ {
		for dx := -shiftSearchRange; dx <= shiftSearchRange; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if v := sad(ga, gb, dx, dy); v < best {
				best = v
				bestDX, bestDY = dx, dy
			}
		}
	}

	scale := srcWidth / sampleWidth
	return bestDX * scale, bestDY * scale
}

// sad is the mean absolute luminance difference between a and b with b
// offset by (dx, dy), over the overlapping region
func sad(a, b *image.NRGBA, dx, dy int) float64 {
	w, h := a.Bounds().Dx(), a.Bounds().Dy()
	var sum, count int64
	for y := 0; y < h; y++ {
		by := y + dy
		if by < 0 || by >= h {
			continue
		}
		for x := 0; x < w; x++ {
			bx := x + dx
			if bx < 0 || bx >= w {
				continue
			}
			v := int64(a.Pix[y*a.Stride+x*4]) - int64(b.Pix[by*b.Stride+bx*4])
			if v < 0 {
				v = -v
			}
			sum += v
			count++
		}
	}
	if count == 0 {
		return 255
	}
	return float64(sum) / float64(count)
}

// translate shifts the frame by (dx, dy), keeping the original pixels where
// the shifted copy leaves the canvas
func translate(img image.Image, dx, dy int) *image.NRGBA {
	if dx == 0 && dy == 0 {
		return imaging.Clone(img)
	}
	return imaging.Paste(img, img, image.Pt(dx, dy))
}
