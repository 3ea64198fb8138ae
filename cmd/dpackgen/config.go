/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/untillpro/goutils/logger"
	"gopkg.in/yaml.v3"
)

// loadConfig reads the configuration file. The default file is optional,
// an explicitly named one is not.
func loadConfig(path string) (*config, error) {
	cfg := &config{}
	explicit := path != ""
	if !explicit {
		path = defaultConfig
	}
	content, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("configuration loaded from %s", path))
	}
	return cfg, nil
}
