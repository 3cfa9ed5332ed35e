package chaincfg

import (
	"encoding/binary"
	"encoding/hex"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

var (
	// bigOne is 1 represented as a big.Int. It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// defaultPowLimit is the highest proof of work value a block can have
	// on every network: 2^255 - 1.
	defaultPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
)

// Params defines a CTSC network by its parameters. These parameters are used
// to validate blocks, encode addresses and find peers, and are shared by every
// component that needs to know which network it is running on.
type Params struct {
	// ID is the network the parameters belong to.
	ID Network

	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.BitcoinNet

	// AlertPubKey is the key network alerts are signed with.
	AlertPubKey []byte

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// SubsidyHalvingInterval is the interval of blocks before the subsidy
	// is reduced.
	SubsidyHalvingInterval int32

	// MaxReorganizationDepth is the deepest reorganization accepted.
	MaxReorganizationDepth int32

	// EnforceBlockUpgradeMajority is the number of blocks out of the last
	// ToCheckBlockUpgradeMajority that must carry a new version before
	// new version rules are enforced for blocks of that version.
	EnforceBlockUpgradeMajority int32

	// RejectBlockOutdatedMajority is the number of blocks out of the last
	// ToCheckBlockUpgradeMajority that must carry a new version before
	// blocks of the old version are rejected.
	RejectBlockOutdatedMajority int32

	// ToCheckBlockUpgradeMajority is the window the two majorities above
	// are counted over.
	ToCheckBlockUpgradeMajority int32

	// MinerThreads is the default number of internal miner threads.
	MinerThreads int

	// TargetTimespan is the desired amount of time that should elapse
	// before the block difficulty requirement is examined.
	TargetTimespan time.Duration

	// TargetSpacing is the desired amount of time to generate each block.
	TargetSpacing time.Duration

	// CoinbaseMaturity is the number of blocks required before newly mined
	// coins can be spent.
	CoinbaseMaturity uint16

	// MasternodeCountDrift is the tolerated difference between the
	// reported and the observed masternode count.
	MasternodeCountDrift int

	// MaxMoneyOut is the largest amount a single output may carry.
	MaxMoneyOut btcutil.Amount

	// LastPOWBlock is the last block height mined by proof of work.
	LastPOWBlock int32

	// ModifierUpdateBlock is the height the stake modifier update activates
	// at.
	ModifierUpdateBlock int32

	// Genesis describes the genesis block.
	Genesis GenesisSpec

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// FixedSeeds are peers tried when DNS seeding yields nothing.
	FixedSeeds []SeedSpec

	// Prefixes holds the base58 version bytes.
	Prefixes AddressPrefixes

	// Checkpoints are the known good blocks of the chain.
	Checkpoints *CheckpointData

	MiningRequiresPeers           bool
	AllowMinDifficultyBlocks      bool
	DefaultConsistencyChecks      bool
	RequireStandard               bool
	MineBlocksOnDemand            bool
	SkipProofOfWorkCheck          bool
	TestnetToBeDeprecatedFieldRPC bool
	HeadersFirstSyncingActive     bool

	// PoolMaxTransactions is the most transactions a single obfuscation
	// pool accepts.
	PoolMaxTransactions int

	// SporkKeyOld and SporkKey sign network sporks. Messages signed with
	// the new key are enforced from EnforceNewSporkKey, messages signed
	// with the old key are rejected from RejectOldSporkKey.
	SporkKeyOld        string
	SporkKey           string
	EnforceNewSporkKey time.Time
	RejectOldSporkKey  time.Time

	// MasternodePoolDummyAddress is the address obfuscation collateral is
	// checked against.
	MasternodePoolDummyAddress string

	// StartMasternodePayments is when masternode payments begin.
	StartMasternodePayments time.Time

	// BudgetFeeConfirmations is the number of confirmations a budget
	// proposal fee transaction needs.
	BudgetFeeConfirmations int
}

// Interval returns the number of blocks between difficulty retargets.
func (p *Params) Interval() int64 {
	return int64(p.TargetTimespan / p.TargetSpacing)
}

// MessageStart returns the four magic bytes that start every message on the
// network, in the order they appear on the wire.
func (p *Params) MessageStart() [4]byte {
	var start [4]byte
	binary.LittleEndian.PutUint32(start[:], uint32(p.Net))

	return start
}

// clone returns a deep copy of p. Nothing reachable from the copy is shared
// with p.
func (p *Params) clone() *Params {
	dup := *p

	dup.AlertPubKey = cloneBytes(p.AlertPubKey)
	if p.PowLimit != nil {
		dup.PowLimit = new(big.Int).Set(p.PowLimit)
	}

	dup.Genesis.OutputPubKey = cloneBytes(p.Genesis.OutputPubKey)
	dup.Genesis.Hash = cloneHash(p.Genesis.Hash)
	dup.Genesis.MerkleRoot = cloneHash(p.Genesis.MerkleRoot)

	if p.GenesisBlock != nil {
		block := *p.GenesisBlock
		block.Transactions = make(
			[]*wire.MsgTx, len(p.GenesisBlock.Transactions),
		)
		for i, tx := range p.GenesisBlock.Transactions {
			block.Transactions[i] = tx.Copy()
		}
		dup.GenesisBlock = &block
	}
	dup.GenesisHash = cloneHash(p.GenesisHash)

	dup.DNSSeeds = append([]DNSSeed(nil), p.DNSSeeds...)
	dup.FixedSeeds = append([]SeedSpec(nil), p.FixedSeeds...)
	dup.Checkpoints = p.Checkpoints.clone()

	return &dup
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash. It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}

	return hash
}

// fromHex decodes a hard-coded hex string and panics if it is malformed.
func fromHex(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}

	return b
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}

	return append([]byte(nil), b...)
}

func cloneHash(h *chainhash.Hash) *chainhash.Hash {
	if h == nil {
		return nil
	}

	dup := *h

	return &dup
}
