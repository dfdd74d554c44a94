// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package script

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/shapes"
)

// Script is a recorded host session.
type Script struct {
	// Name identifies the script in logs and golden files.
	Name string `yaml:"name"`

	// Description says what the script exercises.
	Description string `yaml:"description,omitempty"`

	// Viewport is passed to init.
	Viewport Viewport `yaml:"viewport"`

	// Calls run in order after init.
	Calls []Call `yaml:"calls"`
}

// Viewport is the initial surface size in pixels.
type Viewport struct {
	Width  int32 `yaml:"width"`
	Height int32 `yaml:"height"`
}

// Call is one host call.
type Call struct {
	// Op is the call name, e.g. "set_shape_selrect".
	Op string `yaml:"op"`

	// ID is the identifier for use_shape and add_shape_child.
	ID string `yaml:"id,omitempty"`

	// Args are the numeric parameters in wire order.
	Args []float64 `yaml:"args,omitempty"`
}

// ErrInvalidScript wraps every validation failure.
var ErrInvalidScript = errors.New("script: invalid script")

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a script. Unknown fields are rejected.
func Parse(data []byte) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks names, argument counts, ids and channel ranges.
func (s *Script) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidScript)
	}
	if s.Viewport.Width <= 0 || s.Viewport.Height <= 0 {
		return fmt.Errorf("%w: viewport %dx%d", ErrInvalidScript, s.Viewport.Width, s.Viewport.Height)
	}
	for i, c := range s.Calls {
		if err := c.validate(); err != nil {
			return fmt.Errorf("%w: call %d (%s): %v", ErrInvalidScript, i, c.Op, err)
		}
	}
	return nil
}

func (c Call) validate() error {
	o, ok := ops[c.Op]
	if !ok {
		return errors.New("unknown op")
	}
	if len(c.Args) != o.args {
		return fmt.Errorf("want %d args, got %d", o.args, len(c.Args))
	}
	if o.id {
		if _, err := shapes.ParseID(c.ID); err != nil {
			return fmt.Errorf("id: %v", err)
		}
	} else if c.ID != "" {
		return errors.New("id not accepted")
	}
	if c.Op == "resize" {
		for _, v := range c.Args {
			if v < math.MinInt32 || v > math.MaxInt32 || v != math.Trunc(v) {
				return fmt.Errorf("size %v is not a 32-bit integer", v)
			}
		}
	}
	if c.Op == "add_shape_solid_fill" {
		for _, v := range c.Args[:3] {
			if v < 0 || v > math.MaxUint8 || v != math.Trunc(v) {
				return fmt.Errorf("channel %v out of range", v)
			}
		}
	}
	return nil
}
