package domain

import "errors"

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrSellerNotFound   = errors.New("seller not found")
	ErrInvalidInput     = errors.New("invalid input")
)
