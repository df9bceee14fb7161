// Package accounts is the credential store: the data-access layer for the
// account table.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/jwtauth/internal/server/models"
)

// Repository looks up and creates accounts. Implementations do no
// validation of their own; they only report storage failures and the
// duplicate-email condition.
type Repository interface {
	// FindByEmail returns every row whose email equals the argument, verbatim.
	// An empty slice means no match and is not an error.
	FindByEmail(ctx context.Context, email string) ([]models.Account, error)

	// CreateAccount inserts the account unless its email is already taken,
	// in which case common.ErrEmailAlreadyExists is returned.
	CreateAccount(ctx context.Context, account *models.Account) error
}
