// Package kernel contains shared value objects used across all domain
// aggregates: entity identifiers (UUID) and monetary amounts (Price).
//
// Kernel types are immutable, validated at construction, and carry no
// behavior specific to any single aggregate.
package kernel
