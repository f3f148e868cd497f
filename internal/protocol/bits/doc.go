// Package bits owns the bit-level primitives of the BITS wire format.
//
// Ownership boundary:
// - hex digit to bit expansion
// - forward-only bit cursor
// - MSB-first integer conversion
package bits
