// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"io"

	"github.com/db47h/hwmem"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Default construction parameters.
const (
	DefaultWidth     = 16
	DefaultCells     = 16
	DefaultPrecision = hwmem.ByteBits
)

// Config holds the construction parameters of an SRAM.
//
type Config struct {
	// Width of the matrix register in every memory cell. Must be a power of
	// two no larger than MaxWidth. Each cell stores Width² bits.
	Width int `yaml:"width" validate:"gte=2,lte=4096,pow2"`
	// Number of memory cells, which is also the word size of the SRAM.
	Cells int `yaml:"cells" validate:"gte=1"`
	// Precision of adder operands, in bits.
	Precision int `yaml:"precision" validate:"gte=1,lte=63"`
}

// DefaultConfig returns the default configuration: 16 cells of 16x16 latches
// and 8 bits arithmetic.
//
func DefaultConfig() Config {
	return Config{
		Width:     DefaultWidth,
		Cells:     DefaultCells,
		Precision: DefaultPrecision,
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("pow2", validatePow2); err != nil {
		panic(err)
	}
	return v
}

func validatePow2(fl validator.FieldLevel) bool {
	n := fl.Field().Int()
	return n > 0 && n&(n-1) == 0
}

// Validate checks the configuration.
//
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(hwmem.ErrConfig, err.Error())
	}
	return nil
}

// LoadConfig reads a YAML configuration from r. Fields missing from the input
// keep their default value. Unknown fields are an error.
//
//	width: 16
//	cells: 8
//	precision: 8
//
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrapf(hwmem.ErrConfig, "decode: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewAdder returns an adder of the configured precision.
//
func (c Config) NewAdder() (*Adder, error) {
	return NewAdder(c.Precision)
}
