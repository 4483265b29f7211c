package entities

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrCustomerNameRequired    = errors.New("customer name is required")
	ErrCustomerSurnameRequired = errors.New("customer surname is required")
	ErrCustomerPhoneRequired   = errors.New("customer phone is required")
)

// Customer identifies the person the repair order is opened for.
//
// Once attached to an order the customer is immutable except via explicit
// replacement, so the struct carries no partial-update semantics.

type Customer struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Surname       string    `json:"surname"`
	SecondSurname string    `json:"second_surname,omitempty"`
	NationalID    string    `json:"national_id"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email,omitempty"`
	Address       string    `json:"address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ValidateInvariants returns every missing required field, not just the first,
// so the customer form can surface all of them at once.
func (c *Customer) ValidateInvariants() []error {
	var errs []error
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, ErrCustomerNameRequired)
	}
	if strings.TrimSpace(c.Surname) == "" {
		errs = append(errs, ErrCustomerSurnameRequired)
	}
	if strings.TrimSpace(c.Phone) == "" {
		errs = append(errs, ErrCustomerPhoneRequired)
	}
	return errs
}
