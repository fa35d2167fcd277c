// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Qryptify

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; the merged config is validated again in
// its client view, where defaults have already been applied.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.API.BaseURL == "" || cfg.API.RequestTimeout == 0 {
		return ErrInvalidAPIConfigs
	}

	return nil
}
