package apperr

import "errors"

// Invalid is returned when the input fails validation.
var Invalid = errors.New("invalid input")

// Unauthenticated indicates a missing or unverifiable bearer credential.
var Unauthenticated = errors.New("unauthenticated")

// Forbidden indicates an authenticated caller without a sufficient role.
var Forbidden = errors.New("forbidden")

// NotFound indicates that the requested resource does not exist.
var NotFound = errors.New("not found")
