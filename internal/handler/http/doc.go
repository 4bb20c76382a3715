// Package http implements the inbound HTTP transport of the auth gateway.
//
// It wires the chi router, the JSON handlers for login, registration and
// the category listing, and the middleware chain: CORS, panic recovery,
// trace IDs, access logging, request metrics and response compression.
// Handlers decode the body, delegate to the service layer and map its
// errors to status codes; error chains are logged, never returned.
package http
