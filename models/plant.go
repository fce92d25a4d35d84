package models

import "errors"

// ErrPlantNotFound is returned by the persistence layer when no row matches
// the requested id.
var ErrPlantNotFound = errors.New("plant not found")

type Plant struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	IsInStock bool    `json:"is_in_stock"`
}
