package domain

// Role gates which portal views a session may reach. There is no hierarchy:
// a view lists the roles it admits and membership is exact.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleShopOwner Role = "shop_owner"
	RoleEmployee  Role = "employee"
	RoleCustomer  Role = "customer"
)

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleAdmin, RoleShopOwner, RoleEmployee, RoleCustomer:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }
