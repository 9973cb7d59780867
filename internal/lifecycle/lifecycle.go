// Package lifecycle is the order status state machine.
package lifecycle

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gashorafarm/farmconnect/internal/access"
)

type Status string

const (
	Pending   Status = "Pending"
	Confirmed Status = "Confirmed"
	Packed    Status = "Packed"
	OnTheWay  Status = "On the way"
	Delivered Status = "Delivered"
	Declined  Status = "Declined"
)

var ErrIllegalTransition = errors.New("illegal status transition")

var ErrUnknownStatus = errors.New("unknown order status")

type edge struct {
	from, to Status
}

var transitions = map[edge][]access.Role{
	{Pending, Confirmed}:  {access.RoleAdmin},
	{Confirmed, Packed}:   {access.RoleFarmer, access.RoleAdmin},
	{Packed, OnTheWay}:    {access.RoleFarmer, access.RoleAdmin},
	{OnTheWay, Delivered}: {access.RoleFarmer, access.RoleAdmin},
	{Pending, Declined}:   {access.RoleAdmin},
	{Confirmed, Declined}: {access.RoleFarmer, access.RoleAdmin},
}

// All lists statuses in progression order, with Declined last.
var All = []Status{Pending, Confirmed, Packed, OnTheWay, Delivered, Declined}

func Parse(s string) (Status, error) {
	st := Status(s)
	if !slices.Contains(All, st) {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return st, nil
}

func (s Status) Terminal() bool {
	return s == Delivered || s == Declined
}

// Transition reports whether role may move an order from one status to another.
func Transition(from, to Status, role access.Role) error {
	roles, ok := transitions[edge{from, to}]
	if !ok {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
	}
	if !slices.Contains(roles, role) {
		return fmt.Errorf("%w: %s -> %s not allowed for %s", ErrIllegalTransition, from, to, role)
	}
	return nil
}

// Next lists the statuses role may move an order to from the given status.
func Next(from Status, role access.Role) []Status {
	var out []Status
	for _, to := range All {
		if Transition(from, to, role) == nil {
			out = append(out, to)
		}
	}
	return out
}

// RevenueEligible reports whether an order in this status counts towards revenue.
func RevenueEligible(s Status) bool {
	return s == Delivered
}
