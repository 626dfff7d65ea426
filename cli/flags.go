// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"errors"
	"math"
	"strconv"
)

var (
	errNotInteger = errors.New("not an integer")
	errNegative   = errors.New("must not be negative")
)

// maxWhole is the largest magnitude accepted for a whole number written in
// floating point notation: beyond 2^53 float64 no longer holds every integer
const maxWhole = 1 << 53

// wholeNumber returns f as an int64 if it is an exactly representable integer
func wholeNumber(f float64) (int64, error) {
	if math.IsNaN(f) || f != math.Trunc(f) || math.Abs(f) > maxWhole {
		return 0, errNotInteger
	}
	return int64(f), nil
}

// sciInt is a pflag.Value for integers that also accepts scientific
// notation such as 1e7, as long as the value is whole.
type sciInt int64

func (v *sciInt) String() string { return strconv.FormatInt(int64(*v), 10) }
func (v *sciInt) Type() string   { return "int" }

func (v *sciInt) Set(s string) error {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		*v = sciInt(i)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errNotInteger
	}
	i, err := wholeNumber(f)
	if err != nil {
		return err
	}
	*v = sciInt(i)
	return nil
}

// sciUint is the unsigned counterpart of sciInt, used for seeds.
type sciUint uint64

func (v *sciUint) String() string { return strconv.FormatUint(uint64(*v), 10) }
func (v *sciUint) Type() string   { return "uint" }

func (v *sciUint) Set(s string) error {
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		*v = sciUint(u)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errNotInteger
	}
	i, err := wholeNumber(f)
	if err != nil {
		return err
	}
	if i < 0 {
		return errNegative
	}
	*v = sciUint(i)
	return nil
}
