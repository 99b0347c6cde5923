// Package tenant contains the Tenant aggregate, the isolation boundary that
// every other aggregate in the system is scoped to.
package tenant
