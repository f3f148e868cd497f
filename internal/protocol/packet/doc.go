// Package packet decodes BITS packet trees and evaluates them.
//
// Ownership boundary:
// - packet tree model and operator table
// - recursive-descent decode over a bits.Cursor
// - version-sum and expression analyses
// - tree dump encodings
//
// Literal values and operator results are int64. Literals wider than 63
// significant bits, and Sum or Product results outside the int64 range, fail
// with ErrOverflow rather than wrapping.
package packet
