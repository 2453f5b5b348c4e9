package domain

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Role identifies which side of the platform a user acts on. It decides
// which dashboard route the user can reach.
type Role string

const (
	RoleDonor Role = "donor"
	RoleNGO   Role = "ngo"
	RoleAdmin Role = "admin"
)

// Roles lists every role in the order the login page offers them.
var Roles = []Role{RoleDonor, RoleNGO, RoleAdmin}

// displayNames is filled once; a cases.Caser is stateful and not safe to share.
var displayNames = func() map[Role]string {
	caser := cases.Title(language.English)
	m := make(map[Role]string, len(Roles))
	for _, r := range Roles {
		m[r] = caser.String(string(r))
	}
	return m
}()

// ParseRole converts a raw value (form field, path segment) into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return r, nil
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleDonor, RoleNGO, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// Label is the card title shown on the login page.
func (r Role) Label() string {
	switch r {
	case RoleDonor:
		return "Food Donor"
	case RoleNGO:
		return "NGO Partner"
	case RoleAdmin:
		return "Admin"
	}
	return ""
}

// Description is the card subtitle shown on the login page.
func (r Role) Description() string {
	switch r {
	case RoleDonor:
		return "Restaurants, caterers, event organizers"
	case RoleNGO:
		return "Food banks, shelters, community kitchens"
	case RoleAdmin:
		return "Platform administration"
	}
	return ""
}

// Display is the capitalized role name used under the user's name in the navbar.
func (r Role) Display() string {
	if name, ok := displayNames[r]; ok {
		return name
	}
	return cases.Title(language.English).String(string(r))
}

// DashboardPath is the route a user of this role lands on after login.
func (r Role) DashboardPath() string {
	return "/" + string(r)
}

// NotificationsPath is the route of the role's notification list.
func (r Role) NotificationsPath() string {
	return r.DashboardPath() + "/notifications"
}
