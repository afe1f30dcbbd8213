// Package portalsdk is a typed Go client for the CoverCell portal API.
//
// The package serves two audiences. Server handlers import the request and
// response types so the wire shapes live in exactly one place, and portal
// frontends (or tests) use SDKClient and Session to drive the API the way a
// browser would: sign up or log in, hold the session token, and ask the
// access guard which view a session may open.
package portalsdk
