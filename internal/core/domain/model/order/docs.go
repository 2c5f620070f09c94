// Package order contains the Order aggregate: a customer-owned purchase of
// a product with a derived total price and the shared fulfillment lifecycle.
package order
