// Package client is the transport layer of the MindAnalyzer client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the backend: Register, Login and Analyze.
//  2. A JSON-over-HTTP implementation (see HTTPClient). Every call carries a
//     JSON content type and a fresh X-Request-ID; Analyze also carries the
//     bearer token.
//
// # Error Handling
//
// Failures are typed before callers see them:
//   - transport failures (DNS, refused connection, timeout) wrap ErrUnavailable;
//   - non-2xx responses become *ServerError, which also matches
//     ErrUnauthorized via errors.Is when the status is 401;
//   - 2xx bodies that cannot be decoded or violate the response contract
//     wrap ErrInvalidResponse.
//
// The client keeps no session state; tokens are passed per call.
package client
