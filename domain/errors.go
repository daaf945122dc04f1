package domain

import "errors"

var (
	ErrNotFound         = errors.New("record not found")
	ErrNoSnapshot       = errors.New("no snapshot has been refreshed yet")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrItemNotFound     = errors.New("item not found")
)
