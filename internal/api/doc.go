// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between external clients
// and the internal application services, translating HTTP concerns to and
// from domain operations. Handlers never surface raw internal errors;
// everything crossing the wire goes through the sanitized error mapping.
package api
