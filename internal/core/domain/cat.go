package domain

import "errors"

var ErrCatNotFound = errors.New("cat not found")

// ErrInvalidInput marks a write rejected by a database constraint
// (missing NOT NULL column, bad value). Handlers map it to 400.
var ErrInvalidInput = errors.New("invalid input")

// Cat is an immutable animal record. A Cat read from the database always
// carries a non-zero ID; a Cat being created has ID 0 until the insert
// returns one.
type Cat struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Habitat     string `json:"habitat"`
}
