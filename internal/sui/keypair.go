package sui

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/blake2b"
)

const (
	// PrivateKeyHRP is the bech32 human readable part of exported private keys
	PrivateKeyHRP = "suiprivkey"

	// ed25519Flag is the signature scheme flag of Ed25519 keys
	ed25519Flag byte = 0x00
)

// transactionIntent is the intent prefix (scope, version, app id) of transaction data
var transactionIntent = []byte{0, 0, 0}

// ErrUnsupportedKeyScheme is returned for private keys of other signature schemes
var ErrUnsupportedKeyScheme = errors.New("unsupported key scheme")

// Signer signs transactions on behalf of an address
//
//go:generate mockgen -source=keypair.go -destination=../mocks/signer.go -package=mocks -mock_names=Signer=MockSigner
type Signer interface {
	// Address returns the canonical address of the signer
	Address() string
	// SignTransaction signs encoded transaction data and returns the serialized signature
	SignTransaction(txBytes []byte) (string, error)
}

// Ed25519Keypair is an Ed25519 signing key
type Ed25519Keypair struct {
	private ed25519.PrivateKey
	address string
}

// NewEd25519Keypair derives a keypair from a 32 byte seed
func NewEd25519Keypair(seed []byte) (*Ed25519Keypair, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("invalid seed length %d", len(seed))
	}
	private := ed25519.NewKeyFromSeed(seed)
	public := private.Public().(ed25519.PublicKey)
	return &Ed25519Keypair{
		private: private,
		address: PublicKeyToAddress(public),
	}, nil
}

// ParsePrivateKey parses a bech32 suiprivkey string, or base64 of flag||seed or seed
func ParsePrivateKey(key string) (*Ed25519Keypair, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, errors.New("empty private key")
	}

	var raw []byte
	if strings.HasPrefix(key, PrivateKeyHRP+"1") {
		hrp, data, err := bech32.Decode(key)
		if err != nil {
			return nil, fmt.Errorf("failed to decode bech32 private key: %w", err)
		}
		if hrp != PrivateKeyHRP {
			return nil, fmt.Errorf("unexpected private key prefix %q", hrp)
		}
		raw, err = bech32.ConvertBits(data, 5, 8, false)
		if err != nil {
			return nil, fmt.Errorf("failed to convert private key bits: %w", err)
		}
	} else {
		var err error
		raw, err = base64.StdEncoding.DecodeString(key)
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64 private key: %w", err)
		}
		if len(raw) == ed25519.SeedSize {
			return NewEd25519Keypair(raw)
		}
	}

	if len(raw) != ed25519.SeedSize+1 {
		return nil, fmt.Errorf("invalid private key length %d", len(raw))
	}
	if raw[0] != ed25519Flag {
		return nil, fmt.Errorf("%w: flag %d", ErrUnsupportedKeyScheme, raw[0])
	}
	return NewEd25519Keypair(raw[1:])
}

// ExportPrivateKey encodes the keypair as a bech32 suiprivkey string
func (k *Ed25519Keypair) ExportPrivateKey() (string, error) {
	raw := append([]byte{ed25519Flag}, k.private.Seed()...)
	data, err := bech32.ConvertBits(raw, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(PrivateKeyHRP, data)
}

// PublicKey returns the Ed25519 public key
func (k *Ed25519Keypair) PublicKey() ed25519.PublicKey {
	return k.private.Public().(ed25519.PublicKey)
}

// Address returns the address derived from the public key
func (k *Ed25519Keypair) Address() string {
	return k.address
}

// SignTransaction signs the intent message of the transaction data.
// The result is base64(flag || signature || public key).
func (k *Ed25519Keypair) SignTransaction(txBytes []byte) (string, error) {
	digest := blake2b.Sum256(append(append([]byte{}, transactionIntent...), txBytes...))
	sig := ed25519.Sign(k.private, digest[:])

	out := make([]byte, 0, 1+ed25519.SignatureSize+ed25519.PublicKeySize)
	out = append(out, ed25519Flag)
	out = append(out, sig...)
	out = append(out, k.PublicKey()...)
	return base64.StdEncoding.EncodeToString(out), nil
}

// VerifyTransactionSignature checks a serialized Ed25519 signature over transaction data
// and returns the signer address
func VerifyTransactionSignature(txBytes []byte, signature string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return "", fmt.Errorf("failed to decode signature: %w", err)
	}
	if len(raw) != 1+ed25519.SignatureSize+ed25519.PublicKeySize {
		return "", fmt.Errorf("invalid signature length %d", len(raw))
	}
	if raw[0] != ed25519Flag {
		return "", fmt.Errorf("%w: flag %d", ErrUnsupportedKeyScheme, raw[0])
	}

	sig := raw[1 : 1+ed25519.SignatureSize]
	public := ed25519.PublicKey(raw[1+ed25519.SignatureSize:])
	digest := blake2b.Sum256(append(append([]byte{}, transactionIntent...), txBytes...))
	if !ed25519.Verify(public, digest[:], sig) {
		return "", errors.New("signature verification failed")
	}
	return PublicKeyToAddress(public), nil
}

// PublicKeyToAddress derives an address from an Ed25519 public key
func PublicKeyToAddress(public ed25519.PublicKey) string {
	h := blake2b.Sum256(append([]byte{ed25519Flag}, public...))
	return Address(h).String()
}
