// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/emer/avalanche/avalanche"
)

// FileConfig is the content of a --config YAML file.  Every field is
// optional; a field that is present counts as given on the command line.
// Numbers may use scientific notation, e.g., steps: 1e7.
type FileConfig struct {
	Neurons  *float64 `yaml:"neurons"`
	Steps    *float64 `yaml:"steps"`
	Drive    *float64 `yaml:"drive"`
	Strength *float64 `yaml:"strength"`
	EdgeProb *float64 `yaml:"edge_prob"`
	Seed     *float64 `yaml:"seed"`
}

// LoadConfigFile reads a FileConfig.  Unknown keys are an error.
func LoadConfigFile(path string) (*FileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	fc := &FileConfig{}
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return fc, nil
}

// apply copies the present fields into cfg, recording them in have
// under their flag names
func (fc *FileConfig) apply(cfg *avalanche.Config, have map[string]bool) error {
	if fc.Neurons != nil {
		n, err := wholeNumber(*fc.Neurons)
		if err != nil {
			return fmt.Errorf("config file neurons %v: %w", *fc.Neurons, err)
		}
		cfg.N = int(n)
		have["neurons"] = true
	}
	if fc.Steps != nil {
		t, err := wholeNumber(*fc.Steps)
		if err != nil {
			return fmt.Errorf("config file steps %v: %w", *fc.Steps, err)
		}
		cfg.T = t
		have["steps"] = true
	}
	if fc.Drive != nil {
		cfg.H = *fc.Drive
		have["drive"] = true
	}
	if fc.Strength != nil {
		cfg.M = *fc.Strength
		have["strength"] = true
	}
	if fc.EdgeProb != nil {
		cfg.PEdge = *fc.EdgeProb
		have["edge-prob"] = true
	}
	if fc.Seed != nil {
		s, err := wholeNumber(*fc.Seed)
		if err == nil && s < 0 {
			err = errNegative
		}
		if err != nil {
			return fmt.Errorf("config file seed %v: %w", *fc.Seed, err)
		}
		cfg.Seed = uint64(s)
		have["seed"] = true
	}
	return nil
}
