// Package http contains the Chi HTTP handlers for the portfolio API.
// Handlers translate between HTTP and the service layer; all error responses
// follow RFC 7807 via the shared error handler.
package http
