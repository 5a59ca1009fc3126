package account

import (
	"fmt"
	"strings"
)

// Sentinel values used when an address field is left blank
const (
	UnspecifiedLocation = "unspecified"
	NoDescription       = "none"
)

// Address is a value object representing a delivery address
// It is immutable - derive a new Address to change a field
type Address struct {
	city        string
	sector      string
	description string
}

// NewAddress creates a new Address, normalizing blank fields to sentinel values
func NewAddress(city, sector, description string) Address {
	city = strings.TrimSpace(city)
	sector = strings.TrimSpace(sector)
	description = strings.TrimSpace(description)

	if city == "" {
		city = UnspecifiedLocation
	}
	if sector == "" {
		sector = UnspecifiedLocation
	}
	if description == "" {
		description = NoDescription
	}

	return Address{
		city:        city,
		sector:      sector,
		description: description,
	}
}

// City returns the city
func (a Address) City() string {
	return a.city
}

// Sector returns the sector
func (a Address) Sector() string {
	return a.sector
}

// Description returns the detailed description
func (a Address) Description() string {
	return a.description
}

// Format returns the address as a single display line
func (a Address) Format() string {
	return fmt.Sprintf("%s, %s - %s", a.city, a.sector, a.description)
}

// Equals returns true if both addresses are equal
func (a Address) Equals(other Address) bool {
	return a.city == other.city &&
		a.sector == other.sector &&
		a.description == other.description
}

// String returns a string representation of the address
func (a Address) String() string {
	return a.Format()
}
