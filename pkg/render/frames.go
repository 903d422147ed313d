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
package render

import (
	"github.com/bryanchance/framekit"
	"github.com/pkg/errors"
)

// FrameRange is an ordered, strictly increasing sequence of frame numbers
type FrameRange []int

// NewFrameRange builds the frame sequence for [start, end] with the given
// stride. The stride may be greater than one to skip frames.
func NewFrameRange(start, end, stride int) (FrameRange, error) {
	if end < start {
		return nil, errors.Wrapf(framekit.ErrInvalidFrameRange, "end frame %d is before start frame %d", end, start)
	}
	if stride < 1 {
		return nil, errors.Wrapf(framekit.ErrInvalidFrameRange, "stride must be positive; received %d", stride)
	}
	r := FrameRange{}
	for f := start; f <= end; f += stride {
		r = append(r, f)
	}
	return r, nil
}

// HostAssignment is the portion of a frame range assigned to a single host
type HostAssignment struct {
	Host   string
	Frames FrameRange
}

// Partition splits a frame range into contiguous per-host chunks, preserving
// both frame order and host order. Chunk sizes differ by at most one frame;
// the remainder is handed out one frame at a time starting with the first
// host. When there are more hosts than frames the trailing hosts receive
// empty chunks.
func Partition(r FrameRange, hosts []string) ([]HostAssignment, error) {
	if len(hosts) == 0 {
		return nil, framekit.ErrNoHosts
	}

	base := len(r) / len(hosts)
	remain := len(r) % len(hosts)

	assignments := make([]HostAssignment, 0, len(hosts))
	idx := 0
	for i, host := range hosts {
		size := base
		if i < remain {
			size++
		}
		chunk := append(FrameRange{}, r[idx:idx+size]...)
		assignments = append(assignments, HostAssignment{
			Host:   host,
			Frames: chunk,
		})
		idx += size
	}

	return assignments, nil
}
