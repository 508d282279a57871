package domain

// Session denotes who is currently signed in. It is a copy of exactly one
// Account, persisted separately from the account list, created on login or
// registration and destroyed on logout.
type Session struct {
	Account Account `json:"account"`
}

// DashboardPath returns the view the signed-in account should land on,
// with the account kind encoded as a query parameter.
func (s *Session) DashboardPath() string {
	return "/dashboard?type=" + string(s.Account.Kind)
}
