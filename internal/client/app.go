// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-prop-sync/internal/logger"
	"github.com/MKhiriev/go-prop-sync/internal/service"
	"github.com/MKhiriev/go-prop-sync/models"
)

type App struct {
	conn   *service.Connection
	out    io.Writer
	logger *logger.Logger
}

// NewApp returns a client that runs commands over conn and prints results
// to out.
func NewApp(conn *service.Connection, out io.Writer, logger *logger.Logger) *App {
	return &App{conn: conn, out: out, logger: logger}
}

// Run implements [Client]. A cached session is tried first; without one the
// client logs on.
func (a *App) Run(ctx context.Context, args []string) error {
	cmd, err := parseCommand(args)
	if err != nil {
		return err
	}

	resumed, err := a.conn.Guard.Resume(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("cached session unusable")
	}
	if !resumed {
		if err = a.conn.Guard.Logon(ctx); err != nil {
			return fmt.Errorf("logon: %w", err)
		}
	}

	switch cmd.kind {
	case commandAB:
		return a.readAB(ctx, cmd)
	case commandProp:
		return a.loadProp(ctx, cmd)
	default:
		return a.edit(ctx, cmd)
	}
}

// edit loads the entry, applies the edits, saves and prints the result.
func (a *App) edit(ctx context.Context, cmd command) error {
	storage := a.conn.OpenProps(nil, cmd.entryID, 0)
	defer storage.Close(ctx)

	obj, err := storage.Load(ctx)
	switch {
	case errors.Is(err, service.ErrNotFound) && cmd.edits():
		a.logger.Info().Hex("entry_id", cmd.entryID).Msg("entry not found, creating a new message")
		obj = models.NewPropertyObject(models.ObjectTypeMessage, 0)
	case err != nil:
		return err
	}

	if !cmd.edits() {
		return a.print(newObjectView(obj))
	}

	for _, pv := range cmd.sets {
		obj.Set(pv.Tag, pv.Value)
	}
	for _, tag := range cmd.deletes {
		obj.Delete(tag)
	}

	if err = storage.Save(ctx, obj); err != nil {
		return err
	}
	return a.print(newObjectView(obj))
}

func (a *App) loadProp(ctx context.Context, cmd command) error {
	storage := a.conn.OpenProps(nil, cmd.entryID, 0)
	defer storage.Close(ctx)

	pv, err := storage.LoadProp(ctx, cmd.objectID, cmd.tag)
	if err != nil {
		return err
	}
	return a.print(propView{Tag: pv.Tag.String(), Value: pv.Value})
}

func (a *App) readAB(ctx context.Context, cmd command) error {
	storage := a.conn.OpenABProps(cmd.entryID)
	defer storage.Close(ctx)

	obj, err := storage.Load(ctx)
	if err != nil {
		return err
	}
	return a.print(newObjectView(obj))
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
