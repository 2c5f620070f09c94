// Package services contains stateless domain services: the DNA scoring
// engine that validates genomic submissions and derives their billable unit
// count, and the access policy that rules on every authorization-sensitive
// operation. Both are pure functions over their inputs.
package services
