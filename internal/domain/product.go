package domain

import "time"

// Product is the transfer shape of an inventory item. ID is the string form
// of the store primary key and is immutable once assigned.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Count       int       `json:"count"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductPatch carries the mutable fields submitted on create and update.
type ProductPatch struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Count       int    `json:"count"`
	Description string `json:"description,omitempty"`
}
