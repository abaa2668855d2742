// Package errors provides the structured error type shared by seqkit
// packages. Every failure that leaves a cursor, the configuration layer or the
// HTTP API is an *AppError carrying a machine-readable code, so callers can
// branch on the code instead of matching message text.
package errors
