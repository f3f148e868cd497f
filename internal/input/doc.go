// Package input reads message lines for the decoder. Trimming and comment
// handling happen here so the codec only ever sees bare hex digits.
package input
