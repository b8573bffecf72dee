// Package pipeline runs the local CI: a fixed sequence of external tools executed one
// after another.
//
// Every step runs even when an earlier one fails; the run passes only when all steps
// exit 0. A panic while running a step aborts the run and marks it failed.
package pipeline
