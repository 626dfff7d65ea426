// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avalanche

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig is matched by every configuration error.
	ErrConfig = errors.New("invalid configuration")

	// ErrPhase is returned when a Sim phase method is called out of order.
	ErrPhase = errors.New("simulation phase out of order")
)

// ConfigError reports an invalid Config field.  All ConfigErrors match ErrConfig.
type ConfigError struct {

	// name of the offending field, as used on the command line
	Field string

	// offending value
	Value any

	// what is required of the field
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: -%s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrConfig }

// phaseError returns an ErrPhase for method called in phase cur
func phaseError(method string, cur Phases) error {
	return fmt.Errorf("%s called in %v: %w", method, cur, ErrPhase)
}
