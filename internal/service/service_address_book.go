// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-prop-sync/models"
)

// addressBookDomain is appended to user names to form their addresses.
const addressBookDomain = "prop-sync.local"

// addressBookService exposes the store's users as mail user entries. The
// entry id of a user is its name.
type addressBookService struct {
	users map[string]string
}

func NewAddressBookService(users map[string]string) AddressBookService {
	return &addressBookService{users: users}
}

func (a *addressBookService) ReadProps(_ context.Context, req models.ReadPropsRequest) models.ReadPropsResponse {
	name := string(req.EntryID)
	if _, ok := a.users[name]; !ok {
		return models.ReadPropsResponse{Er: models.CodeNotFound}
	}

	return models.ReadPropsResponse{
		Er:   models.CodeSuccess,
		Type: models.ObjectTypeMailUser,
		Tags: []models.PropTag{models.TagDisplayName, models.TagEmailAddress},
		Values: []models.PropValue{
			{Tag: models.TagDisplayName, Value: name},
			{Tag: models.TagEmailAddress, Value: name + "@" + addressBookDomain},
		},
	}
}
