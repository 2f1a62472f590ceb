// Package order contains the Order aggregate: a customer's request against a
// sale session.
//
// An order is placed in exactly one of two modes, modelled as a tagged
// variant (Spec):
//
//   - weight mode (WeightSpec): the customer asks for a whole unit close to a
//     target weight;
//   - category mode (CategorySpec): the customer asks for a whole or half
//     unit, optionally constrained to a size tier (light, medium, heavy).
//
// The order lifecycle is a three-state machine:
//
//	pending ──> matched ──> invoiced
//	    ^           │
//	    └───────────┘
//	      (unmatch)
//
// Invoiced is terminal: invoiced orders can no longer be edited, matched,
// unmatched or deleted. An order's status is always consistent with its
// assigned unit: pending orders carry no unit reference, matched and invoiced
// orders carry exactly one.
package order
