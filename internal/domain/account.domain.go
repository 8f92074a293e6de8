package domain

import "time"

// Account is a registered user. The email doubles as the login name and is
// unique across all accounts. SecurityStamp is rotated whenever credentials
// change so outstanding sessions can be invalidated.
type Account struct {
	ID            string
	Email         string
	FirstName     string
	LastName      string
	SecurityStamp string
	IsAdmin       bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type CreateAccountRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// AccountView is the public, credential-free projection of an Account.
type AccountView struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	IsAdmin   bool   `json:"isAdmin"`
}

func NewAccountView(acc *Account, isAdmin bool) *AccountView {
	return &AccountView{
		ID:        acc.ID,
		Email:     acc.Email,
		FirstName: acc.FirstName,
		LastName:  acc.LastName,
		IsAdmin:   isAdmin,
	}
}
