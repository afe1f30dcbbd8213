package domain

import "time"

// User is one enrolled identity plus the device it insures. Email is the
// unique key. PasswordHash is bcrypt encoded and must never leave the
// service — handlers serialize users through their own response types.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Phone        string
	Address      string
	City         string
	State        string
	ZipCode      string

	// Device intake, captured at enrollment and immutable after.
	PhoneBrand   string
	PhoneModel   string
	PurchaseDate string
	PhoneValue   string
	Plan         string

	// Images are opaque storage references for the device photos uploaded
	// at signup, in submission order. Duplicates are kept.
	Images []string

	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}
