// Package server exposes the demo pipelines over HTTP using Gin, served
// with h2c so clients may speak HTTP/1.1 or cleartext HTTP/2.
//
// # Routes
//
//	GET  /healthz                 health, including a pipeline smoke test
//	GET  /version                 build version
//	GET  /v1/fibonacci?take=N     Fibonacci pipeline results
//	POST /v1/wordcount            word counts for a JSON {"lines": [...]} or text body
//	GET  /v1/explain/:pipeline    stage tree of a demo pipeline
//
// # Middleware
//
// Applied to every route, outermost first: Recovery, RequestID, CORS,
// BodySizeLimit, RequestLogger (server/middleware).
//
// Errors are written by RespondWithError as {"error": {code, message,
// retryable, details}} with the status carried by the AppError.
package server
