// Package endpoint provides the operational handlers mounted by the server:
// health aggregation and build version.
package endpoint
