// Package services implements the cakeshop data layer on top of a kv.Store:
// the account directory, the session holder, per-vendor catalogs, ratings,
// vendor profiles and the card theme.
//
// Persisted layout (values are JSON unless noted):
//
//	users                    []models.User
//	user                     models.User, the current session
//	cakes_<vendor>           []models.Listing
//	cakeRatings              map listing id -> stars
//	ownerProfile_<vendor>    models.Profile
//	cakeColor                raw token, not JSON
//
// Records that are missing or cannot be decoded read as empty. A decode
// failure is logged at WARN and otherwise ignored.
package services
