// Package services provides the pure domain services of the fulfillment core:
//
//   - SizeClassifier: derives light/medium/heavy weight tiers from a
//     session's weighed units and classifies single weights against them.
//   - MatchPlanner: the candidate decision function. Given an order and the
//     session's current state it produces the candidate groups a caller may
//     present, or the unmatch-only / no-candidates outcomes.
//   - InvoiceSequencer: formats the year-scoped, gap-free invoice number.
//
// All services are stateless and side-effect free; they never touch storage.
// Transactional orchestration lives in the command handlers.
package services
