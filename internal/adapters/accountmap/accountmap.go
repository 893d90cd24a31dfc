// Package accountmap looks up and decodes accounts from a host-supplied snapshot.
//
// Two unrelated on-chain encodings are supported: anchor accounts (8-byte discriminator followed by
// borsh) and packed fixed-layout SPL accounts with an initialized flag.
package accountmap

import (
	"bytes"
	"crypto/sha256"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/hxuan190/hylo-quote-engine/internal/domain"
	"github.com/hxuan190/hylo-quote-engine/internal/metrics"
)

const DiscriminatorSize = 8

// AnchorAccount is implemented by borsh account types owned by an anchor program.
type AnchorAccount interface {
	Discriminator() [DiscriminatorSize]byte
}

// PackedAccount is implemented by fixed-layout account types.
type PackedAccount interface {
	PackedLen() int
	Initialized() bool
}

// AccountDiscriminator computes the anchor discriminator for an account type name.
func AccountDiscriminator(name string) [DiscriminatorSize]byte {
	sum := sha256.Sum256([]byte("account:" + name))
	var d [DiscriminatorSize]byte
	copy(d[:], sum[:DiscriminatorSize])
	return d
}

func lookup(accounts domain.AccountMap, key solana.PublicKey, layout Layout) ([]byte, error) {
	account, ok := accounts[key]
	if !ok {
		return nil, notFound(key, layout)
	}
	return account.Data, nil
}

// GetAnchor finds key in accounts and decodes it as an anchor account of type T.
func GetAnchor[T any, PT interface {
	*T
	AnchorAccount
}](accounts domain.AccountMap, key solana.PublicKey) (*T, error) {
	data, err := lookup(accounts, key, LayoutAnchor)
	if err != nil {
		return nil, err
	}

	out := PT(new(T))
	if len(data) < DiscriminatorSize {
		return nil, failed(key, LayoutAnchor, ErrShortData)
	}
	want := out.Discriminator()
	if !bytes.Equal(data[:DiscriminatorSize], want[:]) {
		return nil, failed(key, LayoutAnchor, ErrDiscriminatorMismatch)
	}
	if err := bin.NewBorshDecoder(data[DiscriminatorSize:]).Decode(out); err != nil {
		return nil, failed(key, LayoutAnchor, err)
	}
	return (*T)(out), nil
}

// GetPacked finds key in accounts and decodes it as a packed account of type T.
// The data length must match exactly and the account must be initialized.
func GetPacked[T any, PT interface {
	*T
	PackedAccount
}](accounts domain.AccountMap, key solana.PublicKey) (*T, error) {
	data, err := lookup(accounts, key, LayoutPacked)
	if err != nil {
		return nil, err
	}

	out := PT(new(T))
	if len(data) != out.PackedLen() {
		return nil, failed(key, LayoutPacked, ErrInvalidLength)
	}
	if err := bin.NewBinDecoder(data).Decode(out); err != nil {
		return nil, failed(key, LayoutPacked, err)
	}
	if !out.Initialized() {
		return nil, failed(key, LayoutPacked, ErrUninitialized)
	}
	return (*T)(out), nil
}

func failed(key solana.PublicKey, layout Layout, cause error) error {
	metrics.AccountDecodeFailures.WithLabelValues(string(layout)).Inc()
	return decodeFailed(key, layout, cause)
}
