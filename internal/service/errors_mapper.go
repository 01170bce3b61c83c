// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-prop-sync/models"
)

// remoteErrors lists the store codes with a dedicated meaning. Everything
// else falls back to ErrNotFound, which is what older servers expect.
var remoteErrors = map[models.ErrorCode]error{
	models.CodeNotFound:        ErrNotFound,
	models.CodeNetworkError:    ErrNetwork,
	models.CodeNotEnoughMemory: ErrOutOfMemory,
	models.CodeLogonFailed:     ErrNotAuthenticated,
}

// mapErrorCode translates a non-retryable store code into a service error.
func mapErrorCode(code models.ErrorCode) error {
	if code == models.CodeSuccess {
		return nil
	}

	if err, ok := remoteErrors[code]; ok {
		return fmt.Errorf("%w: %s", err, code)
	}
	return fmt.Errorf("%w: %s", ErrNotFound, code)
}
