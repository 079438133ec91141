// Package errors provides the structured error type shared by extraction,
// selection and the HTTP layer. Every failure carries a machine-readable
// code, an HTTP status mapping and a retryable hint, and renders as an
// RFC 7807 style body.
package errors
