package service

import (
	"github.com/google/uuid"

	"github.com/gashorafarm/farmconnect/internal/access"
)

// Actor is the principal a request acts as. The zero value is a guest.
type Actor struct {
	UserID   uuid.UUID
	Role     access.Role
	FarmerID *uuid.UUID
}

func (a Actor) role() access.Role {
	if a.Role == "" {
		return access.RoleGuest
	}
	return a.Role
}

func (a Actor) IsAdmin() bool { return a.Role == access.RoleAdmin }

func (a Actor) ownsFarm(farmerID uuid.UUID) bool {
	return a.FarmerID != nil && *a.FarmerID == farmerID
}
