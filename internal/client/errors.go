// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrUsage        = errors.New("usage: <entry-id-hex> [TAG=VALUE ...] [!TAG ...] | prop <entry-id-hex> <TAG> [object-id] | ab <name>")
	ErrInvalidValue = errors.New("invalid property value")
)
