// Package api provides HTTP handlers for the API. Handlers are thin: they
// decode and validate requests, call the learning engines, and map sentinel
// errors onto status codes. All learning logic lives in the service packages.
package api
