// Package server owns the bitsd HTTP surface.
//
// Ownership boundary:
// - POST /v1/decode over protocol.Compute
// - health and prometheus endpoints
// - request id, logging and metrics middleware wiring
package server
