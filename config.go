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

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	homedir "github.com/mitchellh/go-homedir"
)

const (
	// LocalHost is the distinguished host name meaning "run locally, no network hop"
	LocalHost = "localhost"

	configFileName = "framekit.toml"
)

// Config is the configuration used for the framekit CLI
type Config struct {
	// BlenderBinary is the path or name of the blender binary
	BlenderBinary string
	// SSHBinary is the path or name of the remote shell binary
	SSHBinary string
	// SCPBinary is the path or name of the remote copy binary
	SCPBinary string
	// DistributeHosts are the default hosts used for distributed rendering
	DistributeHosts []string
	// OutputDir is the default directory for tool and render output
	OutputDir string
	// Workers is the worker pool size for per-frame image tools (0 = all logical CPUs)
	Workers int
}

// DefaultConfig returns a config with sane defaults for a single machine
func DefaultConfig() *Config {
	return &Config{
		BlenderBinary:   "blender",
		SSHBinary:       "ssh",
		SCPBinary:       "scp",
		DistributeHosts: []string{LocalHost},
		OutputDir:       "render",
		Workers:         0,
	}
}

// DefaultConfigPath returns the config path in the user home directory
func DefaultConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "."+configFileName), nil
}

// LoadConfig returns a framekit config from the specified file path.
// A missing file is not an error; defaults are returned instead.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error loading config from %s: %s", configPath, err)
	}

	return cfg, nil
}
