// Copyright 2023 Sneller, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package containers

import (
	"fmt"
	"io"

	"sigs.k8s.io/yaml"
)

// DefaultGrowthFactor is the factor by which
// a vector multiplies its capacity when it
// has to grow on demand.
const DefaultGrowthFactor = 2

// Config describes tunables shared by
// the growable containers. The zero value
// is not valid; start from DefaultConfig.
//
// Config is usually decoded from a YAML or
// JSON document:
//
//	growth_factor: 2
//	initial_capacity: 16
//	max_size: 1048576
type Config struct {
	// GrowthFactor is the multiplier applied
	// to the current capacity on growth.
	// It must be at least 2.
	GrowthFactor int `json:"growth_factor"`
	// InitialCapacity, if non-zero, is the smallest
	// capacity used when an empty container first
	// grows. Nothing is allocated at creation.
	InitialCapacity int `json:"initial_capacity,omitempty"`
	// MaxSize, if non-zero, lowers the maximum
	// number of elements below what the
	// allocator could represent.
	MaxSize int `json:"max_size,omitempty"`
}

// DefaultConfig returns the configuration
// used when none is provided.
func DefaultConfig() Config {
	return Config{GrowthFactor: DefaultGrowthFactor}
}

// Validate returns an error if c cannot be used.
func (c *Config) Validate() error {
	if c.GrowthFactor < 2 {
		return fmt.Errorf("containers: growth_factor %d < 2", c.GrowthFactor)
	}
	if c.InitialCapacity < 0 {
		return fmt.Errorf("containers: negative initial_capacity %d", c.InitialCapacity)
	}
	if c.MaxSize < 0 {
		return fmt.Errorf("containers: negative max_size %d", c.MaxSize)
	}
	if c.MaxSize != 0 && c.InitialCapacity > c.MaxSize {
		return fmt.Errorf("containers: initial_capacity %d > max_size %d", c.InitialCapacity, c.MaxSize)
	}
	return nil
}

// just pick a limit; configs are tiny
const maxConfigSize = 64 * 1024

// ParseConfig parses a YAML or JSON document
// into a Config. Fields that are absent keep
// their DefaultConfig values.
func ParseConfig(buf []byte) (Config, error) {
	c := DefaultConfig()
	if len(buf) > maxConfigSize {
		return c, fmt.Errorf("containers: config of size %d beyond limit %d", len(buf), maxConfigSize)
	}
	if err := yaml.Unmarshal(buf, &c); err != nil {
		return c, fmt.Errorf("containers: parsing config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// DecodeConfig reads a config document from src.
//
// See also: ParseConfig
func DecodeConfig(src io.Reader) (Config, error) {
	buf, err := io.ReadAll(io.LimitReader(src, maxConfigSize+1))
	if err != nil {
		return DefaultConfig(), err
	}
	return ParseConfig(buf)
}
