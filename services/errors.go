package services

import "errors"

// ErrNotFound signals that the operation target row does not exist. Handlers
// translate it to HTTP 404.
var ErrNotFound = errors.New("record not found")
