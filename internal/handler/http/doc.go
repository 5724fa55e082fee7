// Package http is the REST transport of the company directory.
//
// Routes live under /api. Every request gets a trace id and an access log
// line; company routes require a bearer token and write routes additionally
// require the editor role. Failures are answered with [models.ErrorResponse].
package http
