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
	"context"
	"time"

	"github.com/bryanchance/framekit"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

// JobSpec describes one distributed render
type JobSpec struct {
	// ProjectFile is the project (.blend) to render
	ProjectFile string
	// OutputDir receives the rendered frames; remote hosts render into the
	// same path and results are merged back into the local directory
	OutputDir string
	// Frames is the full frame sequence to render
	Frames FrameRange
	// Hosts are the machines to distribute across, in order
	Hosts []string
}

// HostResult reports the outcome of one host's portion of a dispatch.
// Render, retrieval, and cleanup failures are recorded here rather than
// aborting the dispatch so every host is driven to completion.
type HostResult struct {
	Host        string
	Frames      FrameRange
	Duration    time.Duration
	RenderErr   error
	RetrieveErr error
	CleanupErr  error
}

// Err returns the first failure for the host, if any
func (r *HostResult) Err() error {
	for _, err := range []error{r.RenderErr, r.RetrieveErr, r.CleanupErr} {
		if err != nil {
			return err
		}
	}
	return nil
}

// Report is the outcome of a dispatch across all hosts
type Report struct {
	// ID is the unique id assigned to the dispatch
	ID string
	// Results has one entry per host, in host order
	Results []*HostResult
}

// Failed reports whether any host failed
func (r *Report) Failed() bool {
	for _, hr := range r.Results {
		if hr.Err() != nil {
			return true
		}
	}
	return false
}

// Dispatcher partitions a frame range across hosts and drives one render
// process per host to completion
type Dispatcher struct {
	blenderBinary string
	transport     Transport
}

// NewDispatcher returns a dispatcher that launches the given renderer binary
// through the transport
func NewDispatcher(blenderBinary string, transport Transport) *Dispatcher {
	if blenderBinary == "" {
		blenderBinary = "blender"
	}
	return &Dispatcher{
		blenderBinary: blenderBinary,
		transport:     transport,
	}
}

// Dispatch partitions the job's frames across its hosts, syncs the project
// file to remote hosts whose copy is stale, launches every render process
// before waiting on any of them, then waits on each in turn. After all
// processes have exited, remote output is retrieved into the local output
// directory and the remote output directory is removed. Remote cleanup is
// only performed when retrieval for that host succeeded; the frames on the
// remote host are the only copy until retrieval completes.
//
// Configuration and sync errors abort the dispatch before any process is
// spawned. Per-host render and transfer failures are recorded in the report
// instead. There is no timeout and no cancellation of in-flight renders
// beyond the passed context.
func (d *Dispatcher) Dispatch(ctx context.Context, spec *JobSpec) (*Report, error) {
	assignments, err := Partition(spec.Frames, spec.Hosts)
	if err != nil {
		return nil, err
	}

	report := &Report{
		ID: uuid.NewV4().String(),
	}
	log := logrus.WithFields(logrus.Fields{
		"dispatch": report.ID,
		"project":  spec.ProjectFile,
	})
	for _, a := range assignments {
		log.Debugf("host %s assigned %d frame(s)", a.Host, len(a.Frames))
	}

	// sync project files before anything is spawned
	for _, a := range assignments {
		if a.Host == framekit.LocalHost {
			continue
		}
		if err := d.syncProject(ctx, a.Host, spec.ProjectFile); err != nil {
			return nil, err
		}
	}

	// launch every process before waiting on any of them so hosts render
	// concurrently
	started := time.Now()
	procs := make([]Process, len(assignments))
	for i, a := range assignments {
		result := &HostResult{
			Host:   a.Host,
			Frames: a.Frames,
		}
		report.Results = append(report.Results, result)

		args := RenderCommand(d.blenderBinary, spec.ProjectFile, spec.OutputDir, a.Frames)
		log.Debugf("starting render on %s: %v", a.Host, args)
		p, err := d.transport.Start(ctx, a.Host, args)
		if err != nil {
			result.RenderErr = err
			continue
		}
		procs[i] = p
	}

	for i, p := range procs {
		if p == nil {
			continue
		}
		result := report.Results[i]
		if err := p.Wait(); err != nil {
			result.RenderErr = errors.Wrapf(err, "render failed on %s", result.Host)
		}
		result.Duration = time.Since(started)
	}

	for _, result := range report.Results {
		if result.Host == framekit.LocalHost {
			continue
		}
		if err := d.transport.CopyFrom(ctx, result.Host, spec.OutputDir, spec.OutputDir); err != nil {
			result.RetrieveErr = err
			log.WithError(err).Errorf("results left on %s in %s", result.Host, spec.OutputDir)
			continue
		}
		if err := d.transport.Remove(ctx, result.Host, spec.OutputDir); err != nil {
			result.CleanupErr = err
		}
	}

	return report, nil
}

// syncProject copies the project file to the host unless the modification
// times already match. A remote query failure (the file is usually simply
// missing on a fresh host) forces a copy; unparseable query output aborts.
func (d *Dispatcher) syncProject(ctx context.Context, host, projectFile string) error {
	local, err := d.transport.ModTime(ctx, framekit.LocalHost, projectFile)
	if err != nil {
		return errors.Wrapf(err, "error reading mod time of %s", projectFile)
	}

	remote, err := d.transport.ModTime(ctx, host, projectFile)
	if err != nil {
		if errors.Cause(err) == framekit.ErrModTimeParse {
			return err
		}
		logrus.WithError(err).Debugf("no usable copy of %s on %s", projectFile, host)
	} else if remote.Equal(local) {
		logrus.Debugf("%s is up to date on %s", projectFile, host)
		return nil
	}

	return d.transport.CopyTo(ctx, host, projectFile)
}
