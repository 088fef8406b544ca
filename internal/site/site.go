package site

import "fmt"

// Placeholders used when a field cannot be read from a detail page.
const (
	NoName     = "no name"
	NoCategory = "no category"
	NoCity     = "no city"
	NoState    = "no state"
	NoZipcode  = "no zipcode"
	NoPhone    = "no phone"
)

// Site is one National Park Service site as read from its detail page.
// Values are fixed at construction.
type Site struct {
	name     string
	category string
	address  string
	zipcode  string
	phone    string
}

func NewSite(name, category, address, zipcode, phone string) Site {
	return Site{
		name:     name,
		category: category,
		address:  address,
		zipcode:  zipcode,
		phone:    phone,
	}
}

func (s Site) Name() string {
	return s.name
}

func (s Site) Category() string {
	return s.category
}

// Address is "city, state", either half possibly a placeholder.
func (s Site) Address() string {
	return s.address
}

func (s Site) Zipcode() string {
	return s.zipcode
}

func (s Site) Phone() string {
	return s.phone
}

// Info renders the one-line summary shown in site listings.
func (s Site) Info() string {
	return fmt.Sprintf("%s (%s): %s %s", s.name, s.category, s.address, s.zipcode)
}

func (s Site) String() string {
	return s.Info()
}
