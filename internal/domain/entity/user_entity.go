package entity

// User is the aggregate root for the customer account domain.
// Password holds a bcrypt hash, never the plaintext, and is excluded
// from every JSON representation returned to callers.
type User struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Password   string `json:"-"`
	Birthmonth string `json:"birthmonth"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}
