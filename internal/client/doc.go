// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the company directory terminal client.
//
// Without arguments (or with "ui") it opens the interactive terminal UI.
// The remaining subcommands cover scripted use: CSV export and import,
// login, registration and logout. The session survives restarts through
// the local session store.
package client
