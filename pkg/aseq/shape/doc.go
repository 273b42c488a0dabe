// Package shape decides which values count as collections and turns them
// into the uniform View the resolvers consume.
//
// Eligible shapes:
// - any Go slice or array; aseq.Hole elements become absent slots
// - a string, one present slot per rune
// - an ArrayLike value; At ok=false marks an absent slot
// - a map[string]any record with a finite non-negative 32-bit "length"
//   entry and index-keyed entries "0".."length-1"; records normalize dense,
//   a missing own entry is present holding aseq.Undefined
//
// Eligible and Normalize are pure: no element is settled or invoked here.
package shape
