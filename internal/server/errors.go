// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoAPIHandler = errors.New("directory API handler is not configured")
	errNoAddress    = errors.New("server listen address is empty")
)
