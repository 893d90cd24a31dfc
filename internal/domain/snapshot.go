package domain

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

var ErrInvalidSnapshot = errors.New("invalid account snapshot")

// AccountPayload is the wire form of an Account, with base64 data.
type AccountPayload struct {
	Owner      string `json:"owner,omitempty"`
	Lamports   uint64 `json:"lamports"`
	Data       string `json:"data"`
	Executable bool   `json:"executable,omitempty"`
}

// Snapshot is the wire form of an AccountMap, keyed by base58 address.
type Snapshot map[string]AccountPayload

func NewSnapshot(accounts AccountMap) Snapshot {
	s := make(Snapshot, len(accounts))
	for key, acc := range accounts {
		p := AccountPayload{
			Lamports:   acc.Lamports,
			Data:       base64.StdEncoding.EncodeToString(acc.Data),
			Executable: acc.Executable,
		}
		if !acc.Owner.IsZero() {
			p.Owner = acc.Owner.String()
		}
		s[key.String()] = p
	}
	return s
}

// AccountMap decodes every entry; the first malformed key, owner or data aborts.
func (s Snapshot) AccountMap() (AccountMap, error) {
	accounts := make(AccountMap, len(s))
	for k, p := range s {
		key, err := solana.PublicKeyFromBase58(k)
		if err != nil {
			return nil, fmt.Errorf("%w: key %q: %v", ErrInvalidSnapshot, k, err)
		}
		var owner solana.PublicKey
		if p.Owner != "" {
			if owner, err = solana.PublicKeyFromBase58(p.Owner); err != nil {
				return nil, fmt.Errorf("%w: owner of %s: %v", ErrInvalidSnapshot, k, err)
			}
		}
		data, err := base64.StdEncoding.DecodeString(p.Data)
		if err != nil {
			return nil, fmt.Errorf("%w: data of %s: %v", ErrInvalidSnapshot, k, err)
		}
		accounts[key] = Account{
			Lamports:   p.Lamports,
			Owner:      owner,
			Data:       data,
			Executable: p.Executable,
		}
	}
	return accounts, nil
}
