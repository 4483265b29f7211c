package entities

import (
	"errors"
	"strings"
)

var (
	ErrDeviceIDRequired    = errors.New("device id is required")
	ErrDeviceBrandRequired = errors.New("device brand is required")
	ErrDeviceModelRequired = errors.New("device model is required")
	ErrDeviceOrderInvalid  = errors.New("device order must be >= 1")
)

// Device is one physical unit registered on the repair order.
//
// Order is the 1-based position of the device within the order list. The
// composition engine keeps Order values a dense 1..N permutation across
// add/remove/reorder; the entity only validates the lower bound.

type Device struct {
	ID           string `json:"id"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	IMEI         string `json:"imei,omitempty"`
	SerialNumber string `json:"serial_number,omitempty"`
	Color        string `json:"color,omitempty"`
	Capacity     string `json:"capacity,omitempty"`
	Notes        string `json:"notes,omitempty"`
	Order        int    `json:"order"`
}

func (d *Device) ValidateInvariants() []error {
	var errs []error
	if strings.TrimSpace(d.ID) == "" {
		errs = append(errs, ErrDeviceIDRequired)
	}
	if strings.TrimSpace(d.Brand) == "" {
		errs = append(errs, ErrDeviceBrandRequired)
	}
	if strings.TrimSpace(d.Model) == "" {
		errs = append(errs, ErrDeviceModelRequired)
	}
	if d.Order < 1 {
		errs = append(errs, ErrDeviceOrderInvalid)
	}
	return errs
}
