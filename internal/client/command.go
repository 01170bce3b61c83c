// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-prop-sync/models"
)

type commandKind int

const (
	commandEdit commandKind = iota
	commandProp
	commandAB
)

// command is a parsed command line.
type command struct {
	kind    commandKind
	entryID []byte

	sets    []models.PropValue
	deletes []models.PropTag

	// prop only
	tag      models.PropTag
	objectID uint32
}

func parseCommand(args []string) (command, error) {
	if len(args) == 0 {
		return command{}, ErrUsage
	}

	switch args[0] {
	case "ab":
		if len(args) != 2 || args[1] == "" {
			return command{}, ErrUsage
		}
		return command{kind: commandAB, entryID: []byte(args[1])}, nil

	case "prop":
		if len(args) < 3 || len(args) > 4 {
			return command{}, ErrUsage
		}
		entryID, err := parseEntryID(args[1])
		if err != nil {
			return command{}, err
		}
		tag, err := models.ParsePropTag(args[2])
		if err != nil {
			return command{}, err
		}
		cmd := command{kind: commandProp, entryID: entryID, tag: tag}
		if len(args) == 4 {
			id, err := strconv.ParseUint(args[3], 10, 32)
			if err != nil {
				return command{}, fmt.Errorf("parse object id %q: %w", args[3], err)
			}
			cmd.objectID = uint32(id)
		}
		return cmd, nil
	}

	entryID, err := parseEntryID(args[0])
	if err != nil {
		return command{}, err
	}

	cmd := command{kind: commandEdit, entryID: entryID}
	for _, arg := range args[1:] {
		if name, ok := strings.CutPrefix(arg, "!"); ok {
			tag, err := models.ParsePropTag(name)
			if err != nil {
				return command{}, err
			}
			cmd.deletes = append(cmd.deletes, tag)
			continue
		}

		name, raw, ok := strings.Cut(arg, "=")
		if !ok {
			return command{}, fmt.Errorf("%w: %q", ErrUsage, arg)
		}
		tag, err := models.ParsePropTag(name)
		if err != nil {
			return command{}, err
		}
		value, err := parseValue(tag, raw)
		if err != nil {
			return command{}, err
		}
		cmd.sets = append(cmd.sets, models.PropValue{Tag: tag, Value: value})
	}

	return cmd, nil
}

func parseEntryID(s string) ([]byte, error) {
	id, err := hex.DecodeString(s)
	if err != nil || len(id) == 0 {
		return nil, fmt.Errorf("%w: entry id %q is not hex", ErrUsage, s)
	}
	return id, nil
}

// parseValue converts raw according to the value type of tag.
func parseValue(tag models.PropTag, raw string) (any, error) {
	switch tag.Type() {
	case models.PropTypeLong:
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidValue, tag, err)
		}
		return v, nil
	case models.PropTypeBoolean:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidValue, tag, err)
		}
		return v, nil
	default:
		return raw, nil
	}
}

func (c command) edits() bool {
	return len(c.sets) > 0 || len(c.deletes) > 0
}
