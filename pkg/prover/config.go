// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package prover

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/nmsafiri/RESOLVE/pkg/prover/model"
	"gopkg.in/yaml.v3"
)

var configValidate = validator.New()

// Config determines the limits and behaviour of a proof search.
type Config struct {
	// MaxDepth is the maximum number of steps in any proof.
	MaxDepth uint `yaml:"max_depth" validate:"min=1"`
	// MaxSteps is the maximum number of applications explored per VC.
	MaxSteps uint `yaml:"max_steps" validate:"min=1"`
	// TimeLimit bounds the time spent on a single VC (zero means no limit).
	TimeLimit time.Duration `yaml:"time_limit" validate:"gte=0"`
	// Workers is the number of VCs proved concurrently.
	Workers uint `yaml:"workers" validate:"min=1,max=256"`
	// SkipIrrelevant skips transformations whose pattern mentions a symbol
	// which does not appear in the proof state.
	SkipIrrelevant bool `yaml:"skip_irrelevant"`
	// ChangeEvents controls progress notification, and is either "always"
	// or "intermittent".
	ChangeEvents string `yaml:"change_events" validate:"oneof=always intermittent"`
	// ChangePeriod is the number of changes between intermittent
	// notifications.
	ChangePeriod uint `yaml:"change_period" validate:"min=1"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MaxDepth:       6,
		MaxSteps:       20000,
		TimeLimit:      0,
		Workers:        1,
		SkipIrrelevant: true,
		ChangeEvents:   "intermittent",
		ChangePeriod:   model.DEFAULT_CHANGE_PERIOD,
	}
}

// LoadConfig reads a YAML configuration file over the defaults, and then
// applies any environment overrides.  An empty path means defaults only.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	//
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return config, fmt.Errorf("load config file: %w", err)
		} else if err := yaml.Unmarshal(data, &config); err != nil {
			return config, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}
	//
	loadConfigFromEnv(&config)
	//
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config: %w", err)
	}
	//
	return config, nil
}

func loadConfigFromEnv(config *Config) {
	if v, ok := envUint("RESOLVE_MAX_DEPTH"); ok {
		config.MaxDepth = v
	}
	//
	if v, ok := envUint("RESOLVE_MAX_STEPS"); ok {
		config.MaxSteps = v
	}
	//
	if v, ok := envUint("RESOLVE_WORKERS"); ok {
		config.Workers = v
	}
	//
	if v := os.Getenv("RESOLVE_TIME_LIMIT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TimeLimit = d
		}
	}
}

func envUint(name string) (uint, bool) {
	if v := os.Getenv(name); v != "" {
		if i, err := strconv.ParseUint(v, 10, 32); err == nil {
			return uint(i), true
		}
	}
	//
	return 0, false
}

// Validate checks that the configuration is valid.
func (c Config) Validate() error {
	return configValidate.Struct(c)
}

// ChangeEventMode constructs the notification policy for a new model.
func (c Config) ChangeEventMode() *model.ChangeEventMode {
	if c.ChangeEvents == "always" {
		return model.Always()
	}
	//
	return model.Intermittent(c.ChangePeriod)
}
