package queries

import (
	"errors"
	"strings"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrGetCustomerByPhoneQueryIsNotConstructed = errors.New(
	"GetCustomerByPhoneQuery must be created via NewGetCustomerByPhoneQuery constructor",
)

// GetCustomerByPhoneQuery finds the customer registered with a phone number.
type GetCustomerByPhoneQuery struct {
	phone string
	guard guard.ConstructorGuard
}

// NewGetCustomerByPhoneQuery trims phone the way customers store it.
func NewGetCustomerByPhoneQuery(phone string) (GetCustomerByPhoneQuery, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return GetCustomerByPhoneQuery{}, errs.NewValueIsRequiredError("phone")
	}
	return GetCustomerByPhoneQuery{phone: phone, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerByPhoneQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerByPhoneQueryIsNotConstructed)
}

func (q GetCustomerByPhoneQuery) Phone() string {
	return q.phone
}
