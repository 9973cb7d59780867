// Package access resolves which roles may reach a route and where a visitor
// who may not is sent instead.
package access

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

type Role string

const (
	RoleGuest  Role = "guest"
	RoleUser   Role = "user"
	RoleFarmer Role = "farmer"
	RoleAdmin  Role = "admin"
)

const (
	FarmerLoginPath = "/farmer/login"
	AdminLoginPath  = "/admin/login"
	LoginPath       = "/login"
	HomePath        = "/"
)

var ErrUnknownRole = errors.New("unknown role")

func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleUser, RoleFarmer, RoleAdmin:
		return r, nil
	case RoleGuest, "":
		return RoleGuest, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

func (r Role) Authenticated() bool {
	return r != RoleGuest && r != ""
}

// Decision is either Allowed or a redirect target.
type Decision struct {
	Allowed    bool   `json:"allowed"`
	RedirectTo string `json:"redirect_to,omitempty"`
}

func Allow() Decision { return Decision{Allowed: true} }

func RedirectTo(path string) Decision { return Decision{RedirectTo: path} }

// AuthorizeRoute gates a route on required roles. An empty required set admits everyone.
func AuthorizeRoute(required []Role, actor Role) Decision {
	if len(required) == 0 || slices.Contains(required, actor) {
		return Allow()
	}
	if actor.Authenticated() {
		return RedirectTo(HomePath)
	}
	switch {
	case slices.Contains(required, RoleFarmer):
		return RedirectTo(FarmerLoginPath)
	case slices.Contains(required, RoleAdmin):
		return RedirectTo(AdminLoginPath)
	default:
		return RedirectTo(LoginPath)
	}
}
