package model

// User is the public identity of an account.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
