// Package models defines the data types exchanged between the giglink client
// and the marketplace API. There is exactly one shape per entity; views never
// define their own.
package models

import "fmt"

// Role distinguishes the two account types of the marketplace.
type Role string

const (
	// RoleCreator applies to gigs.
	RoleCreator Role = "creator"
	// RoleBrand posts gigs.
	RoleBrand Role = "brand"
)

// ParseRole converts a user-supplied string into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCreator:
		return RoleCreator, nil
	case RoleBrand:
		return RoleBrand, nil
	default:
		return "", fmt.Errorf("unknown role %q (want %q or %q)", s, RoleCreator, RoleBrand)
	}
}

// Session is the authenticated identity held by the client. It is valid only
// while a matching bearer token is persisted alongside it; the two are
// written and cleared together.
type Session struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Type     Role   `json:"type"`
	Verified bool   `json:"verified"`
}
