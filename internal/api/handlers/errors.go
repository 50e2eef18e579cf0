package handlers

import "errors"

var (
	ErrInvalidBody      = errors.New("handlers: invalid request body")
	ErrValidation       = errors.New("handlers: validation failed")
	ErrInvalidPathParam = errors.New("handlers: invalid path parameter")
)
