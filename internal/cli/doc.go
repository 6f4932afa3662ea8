// Package cli provides the interactive cakeshop terminal client.
//
// It opens the configured store, wires the services, and runs a REPL whose
// command set follows the signed-in role:
//
//	signed out:      signup, login
//	admin / owner:   listings, add, popular, profile, editprofile, color, logout
//	customer:        businesses, select, browse, rate, download, logout
//
// help and exit work everywhere. A command's error is printed and the loop
// carries on. See App and runREPL.
package cli
