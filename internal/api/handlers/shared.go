// Package handlers contains the HTTP layer: each handler parses the request,
// delegates to a service, and writes a JSON response.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// parseJSON decodes a JSON request body into the given request type.
// Unknown fields are rejected so typos in client payloads fail loudly.
func parseJSON[T any](r *http.Request) (T, error) {
	var req T

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&req); err != nil {
		return req, fmt.Errorf("failed to decode request body: %w", err)
	}

	return req, nil
}
