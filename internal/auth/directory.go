package auth

import (
	"fmt"
	"net/url"

	"github.com/surpluslink/surpluslink/internal/domain"
)

// DemoEmail is the address every demo account shares and the login form pre-fills.
const DemoEmail = "demo@surpluslink.com"

// DemoPassword is pre-filled on the sign-in form. It is never checked.
const DemoPassword = "password123"

// Directory maps each role to the deterministic demo user the mock login hands out.
type Directory struct {
	byRole map[domain.Role]domain.User
	byID   map[string]domain.User
}

// NewDirectory builds the demo user table.
func NewDirectory() *Directory {
	users := []domain.User{
		demoUser("donor-1", "Green Valley Restaurant", domain.RoleDonor),
		demoUser("ngo-1", "City Food Bank", domain.RoleNGO),
		demoUser("admin-1", "Platform Admin", domain.RoleAdmin),
	}

	d := &Directory{
		byRole: make(map[domain.Role]domain.User, len(users)),
		byID:   make(map[string]domain.User, len(users)),
	}
	for _, u := range users {
		d.byRole[u.Role] = u
		d.byID[u.ID] = u
	}
	return d
}

func demoUser(id, name string, role domain.Role) domain.User {
	return domain.User{
		ID:     id,
		Name:   name,
		Email:  DemoEmail,
		Role:   role,
		Avatar: "https://api.dicebear.com/7.x/initials/svg?seed=" + url.QueryEscape(name),
	}
}

// ForRole returns the demo user for role.
func (d *Directory) ForRole(role domain.Role) (domain.User, error) {
	u, ok := d.byRole[role]
	if !ok {
		return domain.User{}, fmt.Errorf("%w: %q", domain.ErrInvalidRole, role)
	}
	return u, nil
}

// ByID looks a demo user up by id.
func (d *Directory) ByID(id string) (domain.User, bool) {
	u, ok := d.byID[id]
	return u, ok
}
