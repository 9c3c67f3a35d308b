// Package schemas declares the request payload and response shapes for every
// resource, together with their validation rules. Validation is explicit and
// enumerated per entity; failures come back as a field-to-message map that
// handlers return verbatim as the 400 body.
package schemas

// ValidationErrors maps a payload field name to a human-readable message.
type ValidationErrors map[string]string

const msgRequired = "missing required field"
