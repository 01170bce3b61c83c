// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoStoreHandler  = errors.New("store server needs an http handler")
	errNoListenAddress = errors.New("store server needs a listen address")
)
