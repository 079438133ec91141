// Package finder answers "what is the k-th smallest value in this source":
// it extracts the first column, checks the rank, runs the selection and
// reports the value together with how many numbers were considered.
//
// Each call extracts its own sequence, so a Finder may be shared between
// goroutines.
package finder
