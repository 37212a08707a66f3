package domain

// AccountKind discriminates the two account types the backend models as
// separate resources (clientes vs estabelecimentos).
type AccountKind string

const (
	AccountCustomer AccountKind = "customer"
	AccountBusiness AccountKind = "business"
)

// User is the authenticated identity held by a session. It is an immutable
// snapshot projected from a login or registration response, replaced wholesale
// on each new login.
type User struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Avatar     string      `json:"avatar,omitempty"`
	Kind       AccountKind `json:"kind"`
	BusinessID string      `json:"business_id,omitempty"` // set only for business accounts
}

// IsBusiness reports whether the user owns an establishment.
func (u User) IsBusiness() bool {
	return u.Kind == AccountBusiness
}
