// Package repository defines the data access contract for liftbase.
//
// This package provides the repository abstraction and error taxonomy for
// persisting and retrieving exercises. The actual implementation is in the
// sqlite subpackage.
//
// # Repository Interface
//
// ExerciseRepository covers the full surface a binding layer needs: Add,
// Get, ListAll, Delete, and Close. All inputs and outputs are plain data
// (strings, string slices, an integer); no storage types leak out.
//
// # Error Taxonomy
//
// Every failure surfaces as one of four kinds: DatabaseError (storage engine
// or codec failure), NotFoundError (point lookup miss), InvalidInputError
// (pre-storage validation), and PoolError (connection acquisition). The
// repository never recovers internally and never retries; each failure is
// reported once to the immediate caller.
//
// Delete is the one operation where an absent target is folded into a
// successful boolean result instead of an error.
package repository
