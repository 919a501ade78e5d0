// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserType distinguishes the two marketplace roles.
type UserType string

const (
	UserTypeCustomer   UserType = "customer"
	UserTypeContractor UserType = "contractor"
)

// User is identified by a unique phone number. An account is created the
// first time a verification code for that phone is confirmed.
type User struct {
	ID             uuid.UUID `json:"id"`
	Phone          string    `json:"phone"`          // Unique identity key, E.164-style string.
	Name           string    `json:"name"`           // Display name supplied during verification.
	Email          string    `json:"email"`          // Optional contact email.
	UserType       UserType  `json:"user_type"`      // customer or contractor.
	Specialization string    `json:"specialization"` // Contractor specialization, free text.
	Experience     string    `json:"experience"`     // Contractor experience, free text.
	IsVerified     bool      `json:"is_verified"`    // Set once a verification code has been confirmed.
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
