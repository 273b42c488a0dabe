// Package alog prints settled pipeline values through zerolog. It is a
// display collaborator only: it awaits a pipe, logs the outcome, and hands
// the pipe back untouched for further chaining.
package alog
