package chaincfg

import (
	"fmt"

	"github.com/btcsuite/btcd/blockchain"
)

// ParamsOverride changes one aspect of a profile under construction.
type ParamsOverride func(*Params)

// derive returns a copy of base with overrides applied in order. base is left
// untouched. The genesis block of the copy is rebuilt and verified so an
// override that changes the genesis description must also change its
// expected hashes.
func derive(base *Params, overrides ...ParamsOverride) (*Params, error) {
	p := base.clone()
	for _, override := range overrides {
		override(p)
	}

	if err := p.finalize(); err != nil {
		return nil, err
	}

	return p, nil
}

// finalize fills in the fields that are computed from others and runs the
// construction-time checks.
func (p *Params) finalize() error {
	block, hash, err := buildVerifiedGenesis(&p.Genesis)
	if err != nil {
		return fmt.Errorf("%v network: %w", p.Name, err)
	}
	p.GenesisBlock = block
	p.GenesisHash = hash

	p.PowLimitBits = blockchain.BigToCompact(p.PowLimit)

	if err := p.Prefixes.Distinct(); err != nil {
		return fmt.Errorf("%v network: %w", p.Name, err)
	}

	log.Debugf("Constructed %v network params, genesis %v", p.Name, hash)

	return nil
}
