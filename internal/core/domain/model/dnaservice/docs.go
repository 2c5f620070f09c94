// Package dnaservice contains the Service aggregate: a customer-owned DNA
// scoring request whose billable unit count is derived by the scoring engine.
package dnaservice
