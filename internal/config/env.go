// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from APP_*, STORAGE_*, SERVER_*, ADAPTER_* and CLIENT_*
// variables. Unset variables leave the field zero so that mergo keeps the
// value from an earlier layer.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error reading directory settings from environment: %w", err)
	}
	return nil
}
