// Package common defines sentinel errors and small helpers shared by the
// cakeshop stores and the terminal client. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Account directory errors.
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyCredentials   = errors.New("username and password are required")
	ErrInvalidRole        = errors.New("invalid role")

	// Session errors.
	ErrNotAuthenticated = errors.New("not signed in")
	ErrForbidden        = errors.New("forbidden for this role")

	// Catalog and rating errors.
	ErrInvalidListing  = errors.New("listing requires a name and a price")
	ErrListingNotFound = errors.New("listing not found")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")

	// Presentation errors.
	ErrUnknownColor     = errors.New("unknown card color")
	ErrMalformedDataURL = errors.New("malformed data url")
)
