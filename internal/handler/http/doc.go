// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP surface of the reference store.
//
// Every route takes a signed JSON body and answers with a signed JSON body
// whose "er" field carries the store's error code. Request tracing, access
// logging, response compression, integrity checks and session verification
// are handled here before requests reach the service layer.
package http
