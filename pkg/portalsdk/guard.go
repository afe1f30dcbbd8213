package portalsdk

// Decision is the outcome of an access check for a gated view.
type Decision int

const (
	// Allow admits the session to the view.
	Allow Decision = iota

	// RedirectToLogin means there is no usable session; send the user to
	// the login page.
	RedirectToLogin

	// RedirectToDefault means the session is valid but its role is not on
	// the view's list; send the user to the landing page.
	RedirectToDefault
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectToLogin:
		return "redirect_to_login"
	case RedirectToDefault:
		return "redirect_to_default"
	}
	return "unknown"
}

// Guard decides whether a session may open a view admitting the listed
// roles. A nil or expired session routes to login. An empty allowed list
// means the view only requires authentication, any role passes.
func Guard(s *Session, allowed ...string) Decision {
	if s == nil || s.Token() == "" || s.Expired() {
		return RedirectToLogin
	}
	if len(allowed) == 0 {
		return Allow
	}
	for _, role := range allowed {
		if s.Role() == role {
			return Allow
		}
	}
	return RedirectToDefault
}
