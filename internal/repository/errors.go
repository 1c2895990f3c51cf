package repository

import "errors"

var (
	// ErrNoImageProvided indicates the request carried neither inline image
	// data nor a URL.
	ErrNoImageProvided = errors.New("no image provided")

	// ErrInvalidBase64 indicates inline image data that could not be decoded
	ErrInvalidBase64 = errors.New("invalid base64 image data")
)
