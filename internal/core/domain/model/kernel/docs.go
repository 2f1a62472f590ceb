// Package kernel contains the shared value objects of the domain model:
// store-assigned identifiers, weights, prices and sale dates.
//
// All types in this package are immutable value objects. They are created
// through validating constructors and their zero values fail Validate(),
// which prevents accidental use of uninitialized values anywhere in the
// domain model.
package kernel
