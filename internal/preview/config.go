// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package preview

import (
	"os"
	"strconv"
	"time"
)

// Config configures the preview server.
type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int // bytes
}

// LoadConfig reads the configuration from the environment:
// SHAPES_ADDR, SHAPES_READ_TIMEOUT and SHAPES_WRITE_TIMEOUT (seconds),
// SHAPES_BODY_LIMIT (bytes).
func LoadConfig() Config {
	return Config{
		Addr:         getEnv("SHAPES_ADDR", ":8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("SHAPES_READ_TIMEOUT", 10)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("SHAPES_WRITE_TIMEOUT", 10)) * time.Second,
		BodyLimit:    getEnvAsInt("SHAPES_BODY_LIMIT", 1<<20),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return defaultVal
}
