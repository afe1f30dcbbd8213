package portalsdk

import (
	"fmt"
	"time"
)

// UserPayload is the public shape of an enrolled user. The password hash is
// never part of it.
type UserPayload struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ZipCode      string    `json:"zipCode"`
	PhoneBrand   string    `json:"phoneBrand"`
	PhoneModel   string    `json:"phoneModel"`
	PurchaseDate string    `json:"purchaseDate"`
	PhoneValue   string    `json:"phoneValue"`
	Plan         string    `json:"plan"`
	Images       []string  `json:"images"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SignupResponse is returned by POST /api/auth/signup on success (201).
type SignupResponse struct {
	Msg   string      `json:"msg"`
	User  UserPayload `json:"user"`
	Token string      `json:"token"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned by POST /api/auth/login on success (200).
type LoginResponse struct {
	Msg   string `json:"msg"`
	Token string `json:"token"`
}

// MeResponse is returned by GET /api/auth/me.
type MeResponse struct {
	User UserPayload `json:"user"`
}

// PlanPayload is one coverage plan in the catalog. Prices are integer cents.
type PlanPayload struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	BaseCents  int64    `json:"baseCents"`
	MaxDevices int      `json:"maxDevices"`
	Features   []string `json:"features"`
}

// AddOnPayload is one optional add-on in the catalog.
type AddOnPayload struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PriceCents  int64  `json:"priceCents"`
	Description string `json:"description"`
}

// PlansResponse is returned by GET /api/plans.
type PlansResponse struct {
	Plans  []PlanPayload  `json:"plans"`
	AddOns []AddOnPayload `json:"addOns"`
}

// QuoteRequest is the body of POST /api/quote. PhoneValue is the declared
// device value in whole dollars, matching the quote form input.
type QuoteRequest struct {
	Plan       string   `json:"plan"`
	AddOns     []string `json:"addOns,omitempty"`
	PhoneValue float64  `json:"phoneValue"`
	Condition  string   `json:"condition"`
}

// QuoteResponse itemizes a monthly premium estimate in integer cents.
type QuoteResponse struct {
	Plan           string   `json:"plan"`
	AddOns         []string `json:"addOns"`
	BaseCents      int64    `json:"baseCents"`
	AddOnCents     int64    `json:"addOnCents"`
	ValueCents     int64    `json:"valueCents"`
	ConditionCents int64    `json:"conditionCents"`
	TotalCents     int64    `json:"totalCents"`
}

// HealthResponse is returned by the liveness and readiness endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Version string        `json:"version,omitempty"`
	Uptime  string        `json:"uptime,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks holds per-dependency readiness results.
type HealthChecks struct {
	Database string `json:"database"`
}

// APIError is the portal's error body. Every non-2xx response carries a msg;
// server errors additionally surface the underlying error text.
type APIError struct {
	StatusCode int `json:"-"`

	Msg    string `json:"msg"`
	Detail string `json:"error,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (%d): %s", e.Msg, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%s (%d)", e.Msg, e.StatusCode)
}
