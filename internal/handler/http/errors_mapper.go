// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/go-prop-sync/internal/service"
	"github.com/MKhiriev/go-prop-sync/models"
)

var errorCodeMap = map[error]models.ErrorCode{
	service.ErrWrongCredentials: models.CodeLogonFailed,
	service.ErrSessionExpired:   models.CodeEndOfSession,
	service.ErrInvalidParameter: models.CodeInvalidParameter,
}

// codeFromError maps a service error to the code sent to the client.
func codeFromError(err error) models.ErrorCode {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return code
		}
	}
	return models.CodeUnableToComplete
}
