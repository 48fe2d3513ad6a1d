// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwmem

import "github.com/pkg/errors"

// Error classes. Errors returned by this module wrap one of these with
// github.com/pkg/errors and can be matched with errors.Is or errors.Cause.
//
var (
	// ErrMalformed is returned when building a Bit, BitString or Byte from
	// invalid data.
	ErrMalformed = errors.New("malformed value")
	// ErrAddressWidth is returned when an address or operand does not have the
	// expected number of bits.
	ErrAddressWidth = errors.New("address width mismatch")
	// ErrOutOfRange is returned for accesses outside of a component's address
	// range.
	ErrOutOfRange = errors.New("address out of range")
	// ErrConfig is returned for invalid construction parameters.
	ErrConfig = errors.New("invalid configuration")
)
