package domain

// Plan is one coverage tier from the catalog. Prices are monthly USD cents;
// arithmetic on premiums stays integral until display.
type Plan struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	BaseCents  int      `json:"base_cents"`
	MaxDevices int      `json:"max_devices"`
	Features   []string `json:"features"`
}

// AddOn is an optional monthly extra on top of a plan.
type AddOn struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PriceCents  int    `json:"price_cents"`
	Description string `json:"description"`
}

// Plans is the coverage catalog, keyed by plan identifier. The signup form
// submits one of these IDs.
var Plans = map[string]Plan{
	"basic": {
		ID:         "basic",
		Name:       "Basic Plan",
		BaseCents:  999,
		MaxDevices: 1,
		Features:   []string{"Screen repair", "Basic protection", "24/7 support"},
	},
	"premium": {
		ID:         "premium",
		Name:       "Premium Plan",
		BaseCents:  1999,
		MaxDevices: 1,
		Features:   []string{"Complete protection", "Theft coverage", "Water damage", "Unlimited claims"},
	},
	"family": {
		ID:         "family",
		Name:       "Family Plan",
		BaseCents:  3499,
		MaxDevices: 5,
		Features:   []string{"Up to 5 devices", "All Premium features", "Family dashboard"},
	},
}

// AddOns is the optional coverage catalog, keyed by add-on identifier.
var AddOns = map[string]AddOn{
	"express": {
		ID:          "express",
		Name:        "Express Replacement",
		PriceCents:  499,
		Description: "Next-day device replacement",
	},
	"international": {
		ID:          "international",
		Name:        "International Coverage",
		PriceCents:  299,
		Description: "Worldwide protection",
	},
	"accessories": {
		ID:          "accessories",
		Name:        "Accessories Coverage",
		PriceCents:  199,
		Description: "Cases, chargers, and more",
	},
}
