package chaincfg

import (
	"math/big"

	btcdchaincfg "github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// BtcdParams maps the profile onto btcd's network parameters so btcutil
// address types and hdkeychain extended keys can be used with CTSC prefixes.
// Fields without a CTSC counterpart, such as fork heights, deployments and the
// segwit address prefixes, are left at their zero value. The result is not
// registered with btcd.
func (p *Params) BtcdParams() *btcdchaincfg.Params {
	params := &btcdchaincfg.Params{
		Name:        p.Name,
		Net:         p.Net,
		DefaultPort: p.DefaultPort,

		GenesisBlock: p.GenesisBlock,
		GenesisHash:  cloneHash(p.GenesisHash),
		PowLimit:     new(big.Int).Set(p.PowLimit),
		PowLimitBits: p.PowLimitBits,

		CoinbaseMaturity:         p.CoinbaseMaturity,
		SubsidyReductionInterval: p.SubsidyHalvingInterval,
		TargetTimespan:           p.TargetTimespan,
		TargetTimePerBlock:       p.TargetSpacing,
		ReduceMinDifficulty:      p.AllowMinDifficultyBlocks,
		GenerateSupported:        p.MineBlocksOnDemand,

		RelayNonStdTxs: !p.RequireStandard,

		// Address encoding magics
		PubKeyHashAddrID: p.Prefixes.PubKeyHashAddrID,
		ScriptHashAddrID: p.Prefixes.ScriptHashAddrID,
		PrivateKeyID:     p.Prefixes.PrivateKeyID,

		HDPrivateKeyID: p.Prefixes.HDPrivateKeyID,
		HDPublicKeyID:  p.Prefixes.HDPublicKeyID,
		HDCoinType:     p.Prefixes.HDCoinType(),
	}

	params.DNSSeeds = make([]btcdchaincfg.DNSSeed, len(p.DNSSeeds))
	for i, seed := range p.DNSSeeds {
		params.DNSSeeds[i] = btcdchaincfg.DNSSeed{Host: seed.Host}
	}

	if p.Checkpoints != nil {
		checkPoints := make(
			[]btcdchaincfg.Checkpoint, len(p.Checkpoints.Checkpoints),
		)
		for i, checkpoint := range p.Checkpoints.Checkpoints {
			var chainHash chainhash.Hash
			copy(chainHash[:], checkpoint.Hash[:])

			checkPoints[i] = btcdchaincfg.Checkpoint{
				Height: checkpoint.Height,
				Hash:   &chainHash,
			}
		}
		params.Checkpoints = checkPoints
	}

	return params
}
