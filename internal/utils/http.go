// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxBodySize bounds request bodies accepted by DecodeJSON.
const maxBodySize = 32 << 20

// WriteJSON serializes data to JSON and writes it with statusCode.
// If hasher is not nil the body signature is sent in the [HashHeader].
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, resp, http.StatusOK, nil)
func WriteJSON(w http.ResponseWriter, data any, statusCode int, hasher *Hasher) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	if hasher != nil {
		w.Header().Set(HashHeader, hasher.SumHex(jsonData))
	}
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// DecodeJSON reads at most 32 MiB from body and decodes it into v.
func DecodeJSON(body io.Reader, v any) error {
	dec := json.NewDecoder(io.LimitReader(body, maxBodySize))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("error decoding JSON body: %w", err)
	}
	return nil
}
