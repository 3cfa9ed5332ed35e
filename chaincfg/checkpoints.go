package chaincfg

import (
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/lightningnetwork/lnd/fn/v2"
)

const (
	// sigcheckVerificationFactor is how much more expensive a transaction
	// after the last checkpoint is to verify when signatures are checked.
	sigcheckVerificationFactor = 5.0

	// secondsPerDay is used to scale TransactionsPerDay.
	secondsPerDay = 24 * 60 * 60
)

var (
	// ErrCheckpointOrder is returned when checkpoint heights are not
	// strictly increasing or the table does not start at the genesis
	// block.
	ErrCheckpointOrder = errors.New("checkpoints out of order")
)

// Checkpoint identifies a known good point in the block chain. Alternative
// blocks at a checkpointed height are rejected.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// TipStats describes the chain tip progress is estimated for.
type TipStats struct {
	// ChainTx is the number of transactions from genesis up to and
	// including the tip.
	ChainTx int64

	// BlockTime is the timestamp of the tip.
	BlockTime time.Time
}

// CheckpointData is the checkpoint table of one network together with the
// statistics used to estimate sync progress past the last checkpoint.
type CheckpointData struct {
	// Checkpoints ordered from oldest to newest.
	Checkpoints []Checkpoint

	// LastCheckpointTime is the timestamp of the last checkpoint block.
	LastCheckpointTime time.Time

	// TransactionsLastCheckpoint is the total number of transactions
	// between genesis and the last checkpoint.
	TransactionsLastCheckpoint int64

	// TransactionsPerDay is the estimated number of transactions per day
	// after the last checkpoint.
	TransactionsPerDay float64

	// Disabled turns CheckBlock into a no-op.
	Disabled bool
}

// ValidateCheckpoints makes sure the table starts at height zero and that
// heights are strictly increasing.
func (c *CheckpointData) ValidateCheckpoints() error {
	if len(c.Checkpoints) == 0 {
		return nil
	}

	if c.Checkpoints[0].Height != 0 {
		return fmt.Errorf("%w: first checkpoint at height %d",
			ErrCheckpointOrder, c.Checkpoints[0].Height)
	}

	for i := 1; i < len(c.Checkpoints); i++ {
		prev, cur := c.Checkpoints[i-1], c.Checkpoints[i]
		if cur.Height <= prev.Height {
			return fmt.Errorf("%w: height %d follows %d",
				ErrCheckpointOrder, cur.Height, prev.Height)
		}
	}

	return nil
}

// LookupHash returns the checkpointed hash at height, if any.
func (c *CheckpointData) LookupHash(height int32) fn.Option[chainhash.Hash] {
	for _, checkpoint := range c.Checkpoints {
		if checkpoint.Height == height {
			return fn.Some(*checkpoint.Hash)
		}
	}

	return fn.None[chainhash.Hash]()
}

// CheckBlock returns false if height is checkpointed with a hash other than
// hash.
func (c *CheckpointData) CheckBlock(height int32, hash *chainhash.Hash) bool {
	if c.Disabled {
		return true
	}

	expected := c.LookupHash(height)
	if expected.IsNone() {
		return true
	}

	want := expected.UnsafeFromSome()

	return want.IsEqual(hash)
}

// TotalBlocksEstimate returns the height of the last checkpoint.
func (c *CheckpointData) TotalBlocksEstimate() int32 {
	if len(c.Checkpoints) == 0 {
		return 0
	}

	return c.Checkpoints[len(c.Checkpoints)-1].Height
}

// LastCheckpoint returns the newest checkpoint whose block is known, as
// reported by have.
func (c *CheckpointData) LastCheckpoint(
	have func(*chainhash.Hash) bool) fn.Option[Checkpoint] {

	for i := len(c.Checkpoints) - 1; i >= 0; i-- {
		if have(c.Checkpoints[i].Hash) {
			return fn.Some(c.Checkpoints[i])
		}
	}

	return fn.None[Checkpoint]()
}

// GuessVerificationProgress estimates how far along verification of the
// chain up to tip is, as a value in [0, 1]. Work is counted as one unit per
// transaction up to the last checkpoint and, when sigchecks is set, five
// units per transaction after it.
func (c *CheckpointData) GuessVerificationProgress(tip *TipStats,
	now time.Time, sigchecks bool) float64 {

	if tip == nil {
		return 0.0
	}

	factor := 1.0
	if sigchecks {
		factor = sigcheckVerificationFactor
	}

	daysSince := func(t time.Time) float64 {
		return float64(now.Unix()-t.Unix()) / secondsPerDay
	}

	var workBefore, workAfter float64
	if tip.ChainTx <= c.TransactionsLastCheckpoint {
		cheapBefore := float64(tip.ChainTx)
		cheapAfter := float64(c.TransactionsLastCheckpoint - tip.ChainTx)
		expensiveAfter := daysSince(c.LastCheckpointTime) *
			c.TransactionsPerDay

		workBefore = cheapBefore
		workAfter = cheapAfter + expensiveAfter*factor
	} else {
		cheapBefore := float64(c.TransactionsLastCheckpoint)
		expensiveBefore := float64(
			tip.ChainTx - c.TransactionsLastCheckpoint,
		)
		expensiveAfter := daysSince(tip.BlockTime) *
			c.TransactionsPerDay

		workBefore = cheapBefore + expensiveBefore*factor
		workAfter = expensiveAfter * factor
	}

	// A clock behind the checkpoint or tip must not push the estimate
	// past completion.
	if workAfter < 0 {
		workAfter = 0
	}

	total := workBefore + workAfter
	if total <= 0 {
		return 0.0
	}

	return workBefore / total
}

// clone returns a deep copy of c.
func (c *CheckpointData) clone() *CheckpointData {
	if c == nil {
		return nil
	}

	dup := *c
	dup.Checkpoints = make([]Checkpoint, len(c.Checkpoints))
	for i, checkpoint := range c.Checkpoints {
		hash := *checkpoint.Hash
		dup.Checkpoints[i] = Checkpoint{
			Height: checkpoint.Height,
			Hash:   &hash,
		}
	}

	return &dup
}
