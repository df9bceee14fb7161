// Package services contains server-side business logic. AccountService
// implements sign-up and sign-in on top of the credential store.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/jwtauth/internal/common"
	"github.com/dmitrijs2005/jwtauth/internal/dbx"
	"github.com/dmitrijs2005/jwtauth/internal/server/auth"
	"github.com/dmitrijs2005/jwtauth/internal/server/config"
	"github.com/dmitrijs2005/jwtauth/internal/server/models"
	"github.com/dmitrijs2005/jwtauth/internal/server/repositories/repomanager"
)

// AccountService creates accounts and exchanges credentials for signed
// session tokens.
type AccountService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	hashCost              int
	dummyHash             string
	now                   func() time.Time
}

// NewAccountService constructs an AccountService using the shared pool,
// repositories and server config. The dummy hash for unknown-email sign-ins
// is built here, at the configured cost.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) (*AccountService, error) {
	dummy, err := auth.NewDummyHash(cfg.HashCost)
	if err != nil {
		return nil, fmt.Errorf("error preparing dummy hash: %w", err)
	}

	return &AccountService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		hashCost:              cfg.HashCost,
		dummyHash:             dummy,
		now:                   time.Now,
	}, nil
}

// SignUp validates the credentials, hashes the password and stores a new
// account. A taken email yields common.ErrEmailAlreadyExists.
func (s *AccountService) SignUp(ctx context.Context, email, password string) error {
	if err := validateCredentials(email, password); err != nil {
		return err
	}

	hash, err := auth.HashPassword(password, s.hashCost)
	if errors.Is(err, common.ErrPasswordTooLong) {
		return err
	}
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	account := &models.Account{Email: email, Password: hash}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Accounts(tx).CreateAccount(ctx, account)
	})
	if err != nil {
		if errors.Is(err, common.ErrEmailAlreadyExists) {
			return common.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating account: %w", err)
	}

	return nil
}

// SignIn checks the password against the stored hash and, on success, issues
// a session token. An unknown email and a wrong password both yield
// common.ErrIncorrectPassword after the same amount of hashing work.
func (s *AccountService) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	records, err := s.repomanager.Accounts(s.db).FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error searching account: %w", err)
	}

	if len(records) == 0 {
		auth.ComparePassword(s.dummyHash, password)
		return nil, common.ErrIncorrectPassword
	}

	if !auth.ComparePassword(records[0].Password, password) {
		return nil, common.ErrIncorrectPassword
	}

	issuedAt := s.now()
	token, err := auth.GenerateToken(records[0].Email, s.jwtSecret, issuedAt, s.tokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("error signing token: %w", err)
	}

	return &models.Session{
		Token:     token,
		Email:     records[0].Email,
		ExpiresAt: issuedAt.Add(s.tokenValidityDuration),
	}, nil
}

// validateCredentials checks presence only, email first.
func validateCredentials(email, password string) error {
	if email == "" {
		return common.ErrMissingEmail
	}
	if password == "" {
		return common.ErrMissingPassword
	}
	return nil
}
