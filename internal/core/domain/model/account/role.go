package account

import (
	"fmt"

	"forwarding/internal/pkg/errs"
)

// Role is the closed set of roles the identity provider can report.
// Internal roles belong to forwarder staff; customer roles belong to users of
// a customer organisation.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// RoleOperator is a forwarder operations staff member.
	RoleOperator

	// RoleOpsAdmin is a forwarder operations administrator.
	RoleOpsAdmin

	// RoleCustomerAdmin is an administrative user of a customer organisation.
	RoleCustomerAdmin

	// RoleCustomerUser is a regular (read-mostly) user of a customer organisation.
	RoleCustomerUser
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleOperator:      "OPERATOR",
		RoleOpsAdmin:      "OPS_ADMIN",
		RoleCustomerAdmin: "CUSTOMER_ADMIN",
		RoleCustomerUser:  "CUSTOMER_USER",
	}
}

// RoleFromString resolves a role from its wire representation (e.g. "OPERATOR").
func RoleFromString(s string) (Role, error) {
	for r, str := range getRoleStrings() {
		if str == s {
			return r, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a known role", s),
	)
}

// Validate checks if the Role value is a member of the closed role set.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// IsInternal reports whether the role belongs to forwarder staff.
func (r Role) IsInternal() bool {
	return r == RoleOperator || r == RoleOpsAdmin
}

// String returns the wire representation of the role.
// Implements fmt.Stringer.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// AccountType distinguishes internal forwarder accounts from customer accounts.
type AccountType int

const (
	// UnknownAccountType represents an invalid or undefined account type.
	UnknownAccountType AccountType = iota

	// AccountInternal is a forwarder staff account.
	AccountInternal

	// AccountCustomer is a customer organisation account.
	AccountCustomer
)

func getAccountTypeStrings() map[AccountType]string {
	return map[AccountType]string{
		AccountInternal: "INTERNAL",
		AccountCustomer: "CUSTOMER",
	}
}

// Validate checks if the AccountType value is a member of the closed set.
func (a AccountType) Validate() error {
	if _, ok := getAccountTypeStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"accountType",
			fmt.Errorf("%d is not a valid account type", a),
		)
	}
	return nil
}

// String returns the wire representation of the account type.
// Implements fmt.Stringer.
func (a AccountType) String() string {
	if s, ok := getAccountTypeStrings()[a]; ok {
		return s
	}
	return "Unknown"
}
