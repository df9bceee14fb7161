// Package accountctl implements the operator command line for managing
// accounts without going through HTTP. It drives the same AccountService as
// the server, so hashing and duplicate handling are identical.
package accountctl

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/jwtauth/internal/common"
	"github.com/dmitrijs2005/jwtauth/internal/flagx"
	"github.com/dmitrijs2005/jwtauth/internal/shared"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// ErrUsage is returned for an unknown or missing subcommand.
var ErrUsage = errors.New("usage: accountctl create -email <address>")

// ErrPasswordMismatch is returned when the confirmation differs.
var ErrPasswordMismatch = errors.New("passwords do not match")

// SignUpper is the part of the account service the tool needs.
type SignUpper interface {
	SignUp(ctx context.Context, email, password string) error
}

// Run dispatches args (os.Args[1:]) to a subcommand. Server flags such as
// -d or -s may be mixed in; they are consumed by config.LoadConfig and
// ignored here.
func Run(ctx context.Context, args []string, svc SignUpper, w io.Writer) error {
	if len(args) == 0 {
		return ErrUsage
	}

	switch args[0] {
	case "create":
		fs := flag.NewFlagSet("create", flag.ContinueOnError)
		fs.SetOutput(w)
		email := fs.String("email", "", "account email")
		if err := fs.Parse(flagx.FilterArgs(args[1:], []string{"-email", "--email"})); err != nil {
			return err
		}
		return Create(ctx, svc, *email, w)
	default:
		return ErrUsage
	}
}

// Create prompts for the password twice without echo and signs the account
// up. The plaintext buffers are wiped before returning.
func Create(ctx context.Context, svc SignUpper, email string, w io.Writer) error {
	if email == "" {
		return common.ErrMissingEmail
	}

	pw, err := getPassword(w, "Enter password: ")
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(pw)

	confirm, err := getPassword(w, "Repeat password: ")
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(confirm)

	if string(pw) != string(confirm) {
		return ErrPasswordMismatch
	}

	if err := svc.SignUp(ctx, email, string(pw)); err != nil {
		return err
	}

	fmt.Fprintf(w, "Account %s created\n", email)
	return nil
}

func getPassword(w io.Writer, prompt string) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}
