package model

import "frontdesk/shared/model"

const (
	CollectionKey = "customers"
	EntityName    = "customer"
	SequenceName  = "customer"

	FieldID     = "id"
	FieldSearch = "search"
)

// Customer is a guest record entered at reception. Records are edited in
// place and never deleted, which keeps the CUSTnnn series collision free.
type Customer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address,omitempty"`
	IDType   string `json:"idType,omitempty"`
	IDNumber string `json:"idNumber,omitempty"`
	model.Metadata
}
