// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime: it resumes or
// opens a session, runs one command against the store and prints the
// result as JSON.
//
// Commands:
//
//	<entry-id-hex> [TAG=VALUE ...] [!TAG ...]   load, edit and save an entry
//	prop <entry-id-hex> <TAG> [object-id]       read a single property
//	ab <name>                                   read an address book entry
//
// Tags are hex ("0x0037001F") or decimal. An entry the store does not know
// is created as a new message when edits are given.
package client
