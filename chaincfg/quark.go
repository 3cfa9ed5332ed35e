package chaincfg

import (
	"bytes"

	"github.com/bitbandi/go-x11/blake"
	"github.com/bitbandi/go-x11/bmw"
	"github.com/bitbandi/go-x11/groest"
	x11hash "github.com/bitbandi/go-x11/hash"
	"github.com/bitbandi/go-x11/jhash"
	"github.com/bitbandi/go-x11/keccak"
	"github.com/bitbandi/go-x11/skein"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

const (
	// quarkMaxHeaderVersion is the last block version whose header is
	// identified by its Quark hash.
	quarkMaxHeaderVersion = 3

	// quarkBranchMask selects the bit of the first digest byte that picks
	// one of the two candidate functions of a branching round.
	quarkBranchMask = 0x08
)

// digest512 runs data through a fresh 512-bit digest.
func digest512(newDigest func() x11hash.Digest, data []byte) []byte {
	d := newDigest()
	_, _ = d.Write(data)

	return d.Sum(nil)
}

// quarkBranch hashes h with set when the branch bit of h is set and with
// unset otherwise.
func quarkBranch(h []byte, set, unset func() x11hash.Digest) []byte {
	if h[0]&quarkBranchMask != 0 {
		return digest512(set, h)
	}

	return digest512(unset, h)
}

// QuarkHash computes the Quark hash of data: nine chained 512-bit rounds of
// which three branch on the output of the previous round. The final digest is
// truncated to its first 32 bytes.
func QuarkHash(data []byte) chainhash.Hash {
	h := digest512(blake.New, data)
	h = digest512(bmw.New, h)
	h = quarkBranch(h, groest.New, skein.New)
	h = digest512(groest.New, h)
	h = digest512(jhash.New, h)
	h = quarkBranch(h, blake.New, bmw.New)
	h = digest512(keccak.New, h)
	h = digest512(skein.New, h)
	h = quarkBranch(h, keccak.New, jhash.New)

	var out chainhash.Hash
	copy(out[:], h[:chainhash.HashSize])

	return out
}

// BlockHeaderHash returns the identifying hash of a block header. Headers up
// to version 3 are identified by the Quark hash of their serialization, later
// versions by the double SHA-256 used for everything else.
func BlockHeaderHash(header *wire.BlockHeader) chainhash.Hash {
	if header.Version > quarkMaxHeaderVersion {
		return header.BlockHash()
	}

	buf := bytes.NewBuffer(make([]byte, 0, wire.MaxBlockHeaderPayload))
	_ = header.Serialize(buf)

	return QuarkHash(buf.Bytes())
}
