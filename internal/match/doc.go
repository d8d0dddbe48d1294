// Package match ranks known field names by similarity to a mistyped one,
// for "did you mean" hints on field errors.
package match
