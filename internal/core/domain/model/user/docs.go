// Package user contains the User aggregate and its tenant-scoped roles.
package user
