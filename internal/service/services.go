// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-prop-sync/internal/config"
	"github.com/MKhiriev/go-prop-sync/internal/logger"
)

// Services are the reference store's services, shared by its handlers.
type Services struct {
	AuthService        AuthService
	ObjectService      ObjectService
	AddressBookService AddressBookService
}

func NewServices(cfg config.ServerConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:        NewAuthService(cfg, logger),
		ObjectService:      NewObjectService(cfg.Store.GUID, logger),
		AddressBookService: NewAddressBookService(cfg.Store.Users),
	}
}
