// Package domain defines the core domain types for the liftbase exercise catalog.
//
// The only entity is Exercise: an identified, named movement with an ordered
// list of targeted muscle groups, optional description and equipment, and a
// difficulty level on a 1-10 scale.
//
// # Construction vs Validation
//
// Construction normalizes: out-of-range difficulty levels are clamped into
// [1,10] and an omitted id is replaced by a generated UUID-v4. Validation is
// a separate, caller-invoked check that additionally enforces a non-blank
// name and a non-empty muscle-group list. The storage layer persists whatever
// it is handed; enforcing Validate before Add is the caller's policy.
//
// # Design Principles
//
// - Plain value objects passed by value across the repository boundary
// - No database or external dependencies beyond id generation
// - Pure domain logic without infrastructure concerns
package domain
