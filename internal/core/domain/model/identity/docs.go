// Package identity contains the Identity aggregate (customer, organization,
// or staff account) and the Actor value object that carries the acting
// identity through authorization checks and command handlers.
package identity
