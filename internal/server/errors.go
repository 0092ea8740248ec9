// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LangLens Authors

package server

import "errors"

var (
	errNoServerAddress = errors.New("no HTTP address configured")
)
