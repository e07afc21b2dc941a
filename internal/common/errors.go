// Package common contains shared constants, sentinel errors, and small
// utilities used across coinkeeper components.
package common

import "errors"

var (

	// repository specific errors
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")
	ErrorStorage       = errors.New("storage error")

	// service specific errors
	ErrorValidation     = errors.New("validation error")
	ErrorAuthentication = errors.New("authentication failed")
)
