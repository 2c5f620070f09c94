// Package product contains the Product aggregate: the staff-managed catalog
// entry that orders reference for unit pricing.
package product
