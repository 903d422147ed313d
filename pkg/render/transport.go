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
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/bryanchance/framekit"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Process is an owned handle to one launched render process
type Process interface {
	// Wait blocks until the process exits, returning a non-nil error for a
	// non-zero exit status
	Wait() error
}

// Transport runs commands on hosts and moves files between the local machine
// and a host. The host framekit.LocalHost is always the local machine.
type Transport interface {
	// CopyTo copies a local file into the host's home directory
	CopyTo(ctx context.Context, host, localPath string) error
	// CopyFrom recursively copies the contents of a remote directory into
	// a local directory
	CopyFrom(ctx context.Context, host, remoteDir, localDir string) error
	// Remove deletes a path on the host
	Remove(ctx context.Context, host, path string) error
	// Start launches the command on the host without waiting for it
	Start(ctx context.Context, host string, args []string) (Process, error)
	// ModTime returns the last modification time of a path on the host
	ModTime(ctx context.Context, host, path string) (time.Time, error)
}

// SSHTransport is a Transport that shells out to ssh and scp. Commands for
// framekit.LocalHost are executed directly with no network hop.
type SSHTransport struct {
	sshBinary string
	scpBinary string

	// Stdout and Stderr receive the combined output of launched render
	// processes; they default to the process streams
	Stdout io.Writer
	Stderr io.Writer
}

// NewSSHTransport returns a transport using the given ssh and scp binaries
func NewSSHTransport(sshBinary, scpBinary string) *SSHTransport {
	if sshBinary == "" {
		sshBinary = "ssh"
	}
	if scpBinary == "" {
		scpBinary = "scp"
	}
	return &SSHTransport{
		sshBinary: sshBinary,
		scpBinary: scpBinary,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}
}

func (t *SSHTransport) CopyTo(ctx context.Context, host, localPath string) error {
	logrus.Debugf("copying %s to %s", localPath, host)
	c := exec.CommandContext(ctx, t.scpBinary, "-p", localPath, host+":")
	if out, err := c.CombinedOutput(); err != nil {
		return errors.Wrapf(err, "error copying %s to %s: %s", localPath, host, string(out))
	}
	return nil
}

func (t *SSHTransport) CopyFrom(ctx context.Context, host, remoteDir, localDir string) error {
	logrus.Debugf("retrieving %s:%s into %s", host, remoteDir, localDir)
	if err := os.MkdirAll(localDir, 0755); err != nil {
		return err
	}
	// the glob is expanded by the remote shell
	src := host + ":" + remoteDir + "/*"
	c := exec.CommandContext(ctx, t.scpBinary, "-r", src, localDir)
	if out, err := c.CombinedOutput(); err != nil {
		return errors.Wrapf(err, "error retrieving results from %s: %s", host, string(out))
	}
	return nil
}

func (t *SSHTransport) Remove(ctx context.Context, host, path string) error {
	logrus.Debugf("removing %s on %s", path, host)
	c := exec.CommandContext(ctx, t.sshBinary, host, "rm -r "+path)
	if out, err := c.CombinedOutput(); err != nil {
		return errors.Wrapf(err, "error removing %s on %s: %s", path, host, string(out))
	}
	return nil
}

func (t *SSHTransport) Start(ctx context.Context, host string, args []string) (Process, error) {
	var c *exec.Cmd
	if host == framekit.LocalHost {
		c = exec.CommandContext(ctx, args[0], args[1:]...)
	} else {
		c = exec.CommandContext(ctx, t.sshBinary, host, strings.Join(args, " "))
	}
	c.Stdout = t.Stdout
	c.Stderr = t.Stderr
	if err := c.Start(); err != nil {
		return nil, errors.Wrapf(err, "error starting render on %s", host)
	}
	return c, nil
}

func (t *SSHTransport) ModTime(ctx context.Context, host, path string) (time.Time, error) {
	if host == framekit.LocalHost {
		fi, err := os.Stat(path)
		if err != nil {
			return time.Time{}, err
		}
		return fi.ModTime(), nil
	}

	c := exec.CommandContext(ctx, t.sshBinary, host, "stat -c %Y "+path)
	out, err := c.Output()
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "error querying mod time of %s on %s", path, host)
	}
	return parseModTime(host, string(out))
}

// parseModTime converts the epoch-seconds output of the remote stat query
// into a typed timestamp
func parseModTime(host, out string) (time.Time, error) {
	v := strings.TrimSpace(out)
	epoch, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}, errors.Wrapf(framekit.ErrModTimeParse, "unexpected stat output from %s: %q", host, v)
	}
	return time.Unix(epoch, 0), nil
}
