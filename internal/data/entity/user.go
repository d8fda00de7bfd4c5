package entity

import (
	"errors"
	"time"
)

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleStaff    UserRole = "staff"
	RoleManager  UserRole = "manager"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleCustomer, RoleStaff, RoleManager:
		return true
	}
	return false
}

var (
	ErrInvalidRole       = errors.New("invalid user role")
	ErrBirthDateInFuture = errors.New("birth date cannot be in the future")
)

type User struct {
	BaseNoDelete
	FirstName         string     `db:"first_name"`
	LastName          string     `db:"last_name"`
	Email             string     `db:"email"`
	PasswordHash      string     `db:"password_hash"`
	BirthDate         time.Time  `db:"birth_date"`
	Role              UserRole   `db:"role"`
	IsMember          bool       `db:"is_member"`
	EmailConfirmed    bool       `db:"email_confirmed"`
	ConfirmedOn       *time.Time `db:"confirmed_on"`
	GatewayCustomerID string     `db:"gateway_customer_id"`
	GatewayCardID     string     `db:"gateway_card_id"`
}

// FullName joins the name parts for display.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Validate checks the fields no database constraint covers.
func (u *User) Validate() error {
	if !u.Role.Valid() {
		return ErrInvalidRole
	}
	if u.BirthDate.After(time.Now()) {
		return ErrBirthDateInFuture
	}
	return nil
}

// HasStoredCard reports whether a payment customer was already registered
// with the gateway for this user.
func (u *User) HasStoredCard() bool {
	return u.GatewayCustomerID != ""
}
