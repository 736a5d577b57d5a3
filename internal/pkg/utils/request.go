package utils

import (
	"medibook-service/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
)

// DecodeAndValidate unmarshals the request body into dst and runs struct
// validation, returning a client-safe error on failure.
func DecodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if err := ValidateStruct(dst); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
