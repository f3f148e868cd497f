// Package protocol is the entry point to the BITS decoder.
//
// Ownership boundary:
// - metric selection
// - decode-once, analyze-after compute path
// - error classification shared by the CLI and HTTP surfaces
//
// Wire primitives live in protocol/bits, the packet tree and its analyses in
// protocol/packet.
package protocol
