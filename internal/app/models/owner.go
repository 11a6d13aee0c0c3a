package models

import "time"

// Owner defines a library owner account based on the 'owners' table.
// All student, seat and fee collections are scoped to one owner.
type Owner struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	Email        string    `json:"email" db:"email" example:"owner@library.com"`
	PasswordHash string    `json:"-" db:"password_hash"`
	LibraryName  string    `json:"libraryName" db:"library_name" example:"City Study Library"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
