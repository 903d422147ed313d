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
package framekit

import "github.com/pkg/errors"

var (
	// ErrNoHosts is returned when a dispatch is attempted with zero hosts
	ErrNoHosts = errors.New("no hosts specified")
	// ErrInvalidFrameRange is returned when a frame range is empty or inverted
	ErrInvalidFrameRange = errors.New("invalid frame range")
	// ErrModTimeParse is returned when a remote modification time query
	// produces output that cannot be parsed
	ErrModTimeParse = errors.New("unable to parse modification time")
	// ErrInvalidMode is returned when a tool is given an unknown processing mode
	ErrInvalidMode = errors.New("invalid mode")
)
