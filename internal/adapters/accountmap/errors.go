package accountmap

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountDecode   = errors.New("account decode failed")

	ErrShortData             = errors.New("data shorter than discriminator")
	ErrDiscriminatorMismatch = errors.New("discriminator mismatch")
	ErrInvalidLength         = errors.New("invalid packed length")
	ErrUninitialized         = errors.New("account not initialized")
)

type Layout string

const (
	LayoutAnchor Layout = "anchor"
	LayoutPacked Layout = "packed"
)

// AccountError carries the offending address. Kind is ErrAccountNotFound or ErrAccountDecode.
type AccountError struct {
	Key    solana.PublicKey
	Layout Layout
	Kind   error
	Cause  error
}

func (e *AccountError) Error() string {
	if e.Kind == ErrAccountNotFound {
		return fmt.Sprintf("Account not found %s", e.Key)
	}
	return fmt.Sprintf("failed to decode %s account %s: %v", e.Layout, e.Key, e.Cause)
}

func (e *AccountError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func notFound(key solana.PublicKey, layout Layout) error {
	return &AccountError{Key: key, Layout: layout, Kind: ErrAccountNotFound}
}

func decodeFailed(key solana.PublicKey, layout Layout, cause error) error {
	return &AccountError{Key: key, Layout: layout, Kind: ErrAccountDecode, Cause: cause}
}
