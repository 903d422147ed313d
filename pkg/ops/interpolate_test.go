package ops

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/bryanchance/framekit"
	"github.com/pkg/errors"
)

func TestInterpolateBlendInterleaving(t *testing.T) {
	f0 := uniformFrame(8, 8, color.NRGBA{0, 0, 0, 255})
	f1 := uniformFrame(8, 8, color.NRGBA{100, 100, 100, 255})
	f2 := uniformFrame(8, 8, color.NRGBA{200, 200, 200, 255})

	out, err := Interpolate(context.Background(), 2, []image.Image{f0, f1, f2}, InterpolateBlend)
	if err != nil {
		t.Fatal(err)
	}
	if v := len(out); v != 5 {
		t.Fatalf("expected 5 frames; received %d", v)
	}

	// originals keep the even indices
	for i, f := range []image.Image{f0, f1, f2} {
		if out[i*2] != f {
			t.Fatalf("expected original frame at index %d", i*2)
		}
	}

	// interpolated frames are the midpoints of their neighbors
	r, _, _, _ := out[1].At(4, 4).RGBA()
	assertChannelNear(t, 50<<8, r, 2)
	r, _, _, _ = out[3].At(4, 4).RGBA()
	assertChannelNear(t, 150<<8, r, 2)
}

func TestInterpolateFlowIdenticalFrames(t *testing.T) {
	f := uniformFrame(32, 32, color.NRGBA{90, 90, 90, 255})

	out, err := Interpolate(context.Background(), 1, []image.Image{f, f}, InterpolateFlow)
	if err != nil {
		t.Fatal(err)
	}
	if v := len(out); v != 3 {
		t.Fatalf("expected 3 frames; received %d", v)
	}
	r, g, b, _ := out[1].At(16, 16).RGBA()
	assertChannelNear(t, 90<<8, r, 2)
	assertChannelNear(t, 90<<8, g, 2)
	assertChannelNear(t, 90<<8, b, 2)
}

func TestInterpolateSingleFrame(t *testing.T) {
	f := uniformFrame(8, 8, color.NRGBA{10, 10, 10, 255})
	out, err := Interpolate(context.Background(), 1, []image.Image{f}, InterpolateBlend)
	if err != nil {
		t.Fatal(err)
	}
	if v := len(out); v != 1 {
		t.Fatalf("expected 1 frame; received %d", v)
	}
}

func TestInterpolateInvalidMode(t *testing.T) {
	f := uniformFrame(8, 8, color.NRGBA{})
	_, err := Interpolate(context.Background(), 1, []image.Image{f, f}, "optical")
	if errors.Cause(err) != framekit.ErrInvalidMode {
		t.Fatalf("expected ErrInvalidMode; received %v", err)
	}
}

func TestEstimateShiftIdentical(t *testing.T) {
	f := uniformFrame(64, 64, color.NRGBA{120, 120, 120, 255})
	dx, dy := estimateShift(f, f)
	if dx != 0 || dy != 0 {
		t.Fatalf("expected zero shift for identical frames; received (%d, %d)", dx, dy)
	}
}
