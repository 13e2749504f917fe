package utils

import "errors"

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrDatabaseError      = errors.New("database error")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrSlugAlreadyExists  = errors.New("slug already exists")
	ErrItemAlreadyInCart  = errors.New("item already in cart")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrOrderNotPayable    = errors.New("order is not payable")
	ErrGatewayError       = errors.New("payment gateway error")
	ErrForbidden          = errors.New("forbidden")
)
