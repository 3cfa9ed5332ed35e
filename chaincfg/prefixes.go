package chaincfg

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Base58Type identifies the kind of data a base58 prefix version-stamps.
type Base58Type uint8

const (
	// PubKeyAddress prefixes pay-to-pubkey-hash addresses.
	PubKeyAddress Base58Type = iota

	// ScriptAddress prefixes pay-to-script-hash addresses.
	ScriptAddress

	// SecretKey prefixes WIF encoded private keys.
	SecretKey

	// ExtPublicKey prefixes BIP32 extended public keys.
	ExtPublicKey

	// ExtSecretKey prefixes BIP32 extended private keys.
	ExtSecretKey

	// ExtCoinType is the hardened BIP44 coin type. It never prefixes an
	// encoded string.
	ExtCoinType

	// numBase58Types must always come last.
	numBase58Types
)

// String returns a human readable name for the prefix class.
func (t Base58Type) String() string {
	switch t {
	case PubKeyAddress:
		return "pubkey-address"
	case ScriptAddress:
		return "script-address"
	case SecretKey:
		return "secret-key"
	case ExtPublicKey:
		return "extended-public-key"
	case ExtSecretKey:
		return "extended-private-key"
	case ExtCoinType:
		return "extended-coin-type"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// checksumLen is the length of the Base58Check checksum.
const checksumLen = 4

var (
	// ErrUnknownPrefix is returned when a decoded string does not start
	// with any prefix of the table.
	ErrUnknownPrefix = errors.New("unknown base58 prefix")

	// ErrChecksum is returned when a decoded string's checksum is wrong.
	ErrChecksum = errors.New("base58 checksum mismatch")

	// ErrDuplicatePrefix is returned when two classes of one table share
	// a prefix.
	ErrDuplicatePrefix = errors.New("duplicate base58 prefix")
)

// AddressPrefixes holds the base58 version bytes of one network.
type AddressPrefixes struct {
	PubKeyHashAddrID byte
	ScriptHashAddrID byte
	PrivateKeyID     byte

	HDPublicKeyID  [4]byte
	HDPrivateKeyID [4]byte
	HDCoinTypeID   [4]byte
}

// Prefix returns a copy of the prefix of class t. Asking for a class outside
// the closed set is a programming error and panics.
func (a *AddressPrefixes) Prefix(t Base58Type) []byte {
	switch t {
	case PubKeyAddress:
		return []byte{a.PubKeyHashAddrID}
	case ScriptAddress:
		return []byte{a.ScriptHashAddrID}
	case SecretKey:
		return []byte{a.PrivateKeyID}
	case ExtPublicKey:
		return append([]byte(nil), a.HDPublicKeyID[:]...)
	case ExtSecretKey:
		return append([]byte(nil), a.HDPrivateKeyID[:]...)
	case ExtCoinType:
		return append([]byte(nil), a.HDCoinTypeID[:]...)
	default:
		panic(fmt.Sprintf("chaincfg: unknown base58 type %v", t))
	}
}

// HDCoinType returns the BIP44 coin type with the hardened bit cleared.
func (a *AddressPrefixes) HDCoinType() uint32 {
	coinType := binary.BigEndian.Uint32(a.HDCoinTypeID[:])

	return coinType &^ hdkeychain.HardenedKeyStart
}

// Distinct returns ErrDuplicatePrefix if two classes share a prefix.
func (a *AddressPrefixes) Distinct() error {
	for i := Base58Type(0); i < numBase58Types; i++ {
		for j := i + 1; j < numBase58Types; j++ {
			if bytes.Equal(a.Prefix(i), a.Prefix(j)) {
				return fmt.Errorf("%w: %v and %v share %x",
					ErrDuplicatePrefix, i, j, a.Prefix(i))
			}
		}
	}

	return nil
}

// Encode base58check encodes payload behind the prefix of class t.
func (a *AddressPrefixes) Encode(t Base58Type, payload []byte) string {
	prefix := a.Prefix(t)

	b := make([]byte, 0, len(prefix)+len(payload)+checksumLen)
	b = append(b, prefix...)
	b = append(b, payload...)
	b = append(b, chainhash.DoubleHashB(b)[:checksumLen]...)

	return base58.Encode(b)
}

// Decode reverses Encode. It returns the class whose prefix the string
// carries along with the payload behind it. Extended key prefixes are matched
// before the single byte ones.
func (a *AddressPrefixes) Decode(s string) (Base58Type, []byte, error) {
	decoded := base58.Decode(s)
	if len(decoded) <= checksumLen {
		return 0, nil, fmt.Errorf("%w: %q too short", ErrChecksum, s)
	}

	body := decoded[:len(decoded)-checksumLen]
	cksum := decoded[len(decoded)-checksumLen:]
	if !bytes.Equal(chainhash.DoubleHashB(body)[:checksumLen], cksum) {
		return 0, nil, ErrChecksum
	}

	for _, t := range []Base58Type{
		ExtPublicKey, ExtSecretKey, PubKeyAddress, ScriptAddress,
		SecretKey,
	} {
		prefix := a.Prefix(t)
		if len(body) > len(prefix) && bytes.HasPrefix(body, prefix) {
			return t, body[len(prefix):], nil
		}
	}

	return 0, nil, fmt.Errorf("%w: %x", ErrUnknownPrefix, body[0])
}
