// Copyright 2022 Evan Hazlett
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ops wraps the image-processing routines used by the framekit
// tools. The routines delegate to external image libraries; this package
// only adapts them to the frame-sequence workflow.
package ops

import (
	"image"

	"github.com/anthonynsimon/bild/blend"
	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/noise"
	"github.com/bryanchance/framekit"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Overlay composites a transparent foreground frame over a static background
func Overlay(bg, fg image.Image) *image.NRGBA {
	return imaging.Overlay(bg, fg, image.Pt(0, 0), 1.0)
}

// Blend returns the equal-weight blend of two frames
func Blend(a, b image.Image) image.Image {
	return blend.Opacity(a, b, 0.5)
}

// BlendAll merges all frames into one with equal weight per frame
func BlendAll(frames []image.Image) (image.Image, error) {
	if len(frames) == 0 {
		return nil, errors.New("no frames to blend")
	}
	out := frames[0]
	for i := 1; i < len(frames); i++ {
		out = blend.Opacity(out, frames[i], 1.0/float64(i+1))
	}
	return out, nil
}

// Diff returns the per-pixel difference of two frames
func Diff(a, b image.Image) image.Image {
	return blend.Difference(a, b)
}

var scaleFilters = map[string]imaging.ResampleFilter{
	"lanczos":  imaging.Lanczos,
	"linear":   imaging.Linear,
	"nearest":  imaging.NearestNeighbor,
	"box":      imaging.Box,
	"gaussian": imaging.Gaussian,
}

// Scale resizes a frame to the given dimensions using the named resampling
// filter (lanczos, linear, nearest, box, gaussian)
func Scale(img image.Image, width, height int, mode string) (*image.NRGBA, error) {
	filter, ok := scaleFilters[mode]
	if !ok {
		return nil, errors.Wrapf(framekit.ErrInvalidMode, "scale mode %q", mode)
	}
	return imaging.Resize(img, width, height, filter), nil
}

// Denoise smooths a frame using the named filter (gaussian, box, median).
// Strength maps to the filter radius.
func Denoise(img image.Image, strength int, mode string) (image.Image, error) {
	if strength < 1 {
		strength = 1
	}
	switch mode {
	case "gaussian":
		return blur.Gaussian(img, float64(strength)), nil
	case "box":
		return blur.Box(img, float64(strength)), nil
	case "median":
		return effect.Median(img, float64(strength)), nil
	}
	return nil, errors.Wrapf(framekit.ErrInvalidMode, "denoise mode %q", mode)
}

// AddNoise blends gaussian noise over a frame
func AddNoise(img image.Image) image.Image {
	b := img.Bounds()
	n := noise.Generate(b.Dx(), b.Dy(), &noise.Options{
		NoiseFn:    noise.Gaussian,
		Monochrome: true,
	})
	return blend.Opacity(img, n, 0.15)
}

// ExtractForeground keeps the pixels of the full frame that differ from the
// background by more than the threshold on any channel; everything else
// becomes transparent
func ExtractForeground(full, bg image.Image, threshold int) *image.NRGBA {
	a := imaging.Clone(full)
	b := imaging.Clone(bg)
	bounds := a.Bounds()
	out := image.NewNRGBA(bounds)

	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			i := y*a.Stride + x*4
			d := 0
			for c := 0; c < 3; c++ {
				v := int(a.Pix[i+c]) - int(b.Pix[i+c])
				if v < 0 {
					v = -v
				}
				if v > d {
					d = v
				}
			}
			if d > threshold {
				copy(out.Pix[i:i+3], a.Pix[i:i+3])
				out.Pix[i+3] = 0xff
			}
		}
	}

	return out
}
