package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"boatsandjoy/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// registerSlotIDsValidation accepts the comma separated slot id list used by
// the booking creation endpoint: one or more positive integers, no blanks, no
// duplicates.
func registerSlotIDsValidation(field val.FieldLevel) bool {
	raw, ok := field.Field().Interface().(string)
	if !ok || raw == "" {
		return false
	}

	seen := map[int64]bool{}

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)

		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil || id <= 0 || seen[id] {
			return false
		}

		seen[id] = true
	}

	return true
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("slotids", registerSlotIDsValidation); err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
