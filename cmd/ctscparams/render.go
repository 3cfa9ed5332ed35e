package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ctscoin/ctscd/chaincfg"
	"github.com/jedib0t/go-pretty/v6/table"
)

// checkpointSummary is the printable form of a checkpoint.
type checkpointSummary struct {
	Height int32  `json:"height"`
	Hash   string `json:"hash"`
}

// paramsSummary is the printable form of a network profile.
type paramsSummary struct {
	Network      string `json:"network"`
	MessageStart string `json:"message_start"`
	DefaultPort  string `json:"default_port"`
	GenesisHash  string `json:"genesis_hash"`
	MerkleRoot   string `json:"merkle_root"`
	GenesisTime  int64  `json:"genesis_time"`
	PowLimitBits string `json:"pow_limit_bits"`

	SubsidyHalvingInterval      int32   `json:"subsidy_halving_interval"`
	MaxReorganizationDepth      int32   `json:"max_reorganization_depth"`
	EnforceBlockUpgradeMajority int32   `json:"enforce_block_upgrade_majority"`
	RejectBlockOutdatedMajority int32   `json:"reject_block_outdated_majority"`
	ToCheckBlockUpgradeMajority int32   `json:"to_check_block_upgrade_majority"`
	TargetTimespan              string  `json:"target_timespan"`
	TargetSpacing               string  `json:"target_spacing"`
	CoinbaseMaturity            uint16  `json:"coinbase_maturity"`
	MaxMoneyOut                 float64 `json:"max_money_out"`
	LastPOWBlock                int32   `json:"last_pow_block"`

	PubKeyAddress string `json:"pubkey_address_prefix"`
	ScriptAddress string `json:"script_address_prefix"`
	SecretKey     string `json:"secret_key_prefix"`
	ExtPublicKey  string `json:"ext_public_key_prefix"`
	ExtSecretKey  string `json:"ext_secret_key_prefix"`
	HDCoinType    uint32 `json:"hd_coin_type"`

	DNSSeeds    []string            `json:"dns_seeds"`
	Checkpoints []checkpointSummary `json:"checkpoints"`

	RequireStandard    bool `json:"require_standard"`
	MineBlocksOnDemand bool `json:"mine_blocks_on_demand"`

	SporkKey                   string `json:"spork_key"`
	MasternodePoolDummyAddress string `json:"masternode_pool_dummy_address"`
	BudgetFeeConfirmations     int    `json:"budget_fee_confirmations"`
}

// summarize flattens p into its printable form.
func summarize(p *chaincfg.Params) *paramsSummary {
	start := p.MessageStart()
	prefix := func(t chaincfg.Base58Type) string {
		return hex.EncodeToString(p.Prefixes.Prefix(t))
	}

	s := &paramsSummary{
		Network:      p.Name,
		MessageStart: hex.EncodeToString(start[:]),
		DefaultPort:  p.DefaultPort,
		GenesisHash:  p.GenesisHash.String(),
		MerkleRoot:   p.GenesisBlock.Header.MerkleRoot.String(),
		GenesisTime:  p.GenesisBlock.Header.Timestamp.Unix(),
		PowLimitBits: fmt.Sprintf("%08x", p.PowLimitBits),

		SubsidyHalvingInterval:      p.SubsidyHalvingInterval,
		MaxReorganizationDepth:      p.MaxReorganizationDepth,
		EnforceBlockUpgradeMajority: p.EnforceBlockUpgradeMajority,
		RejectBlockOutdatedMajority: p.RejectBlockOutdatedMajority,
		ToCheckBlockUpgradeMajority: p.ToCheckBlockUpgradeMajority,
		TargetTimespan:              p.TargetTimespan.String(),
		TargetSpacing:               p.TargetSpacing.String(),
		CoinbaseMaturity:            p.CoinbaseMaturity,
		MaxMoneyOut:                 p.MaxMoneyOut.ToBTC(),
		LastPOWBlock:                p.LastPOWBlock,

		PubKeyAddress: prefix(chaincfg.PubKeyAddress),
		ScriptAddress: prefix(chaincfg.ScriptAddress),
		SecretKey:     prefix(chaincfg.SecretKey),
		ExtPublicKey:  prefix(chaincfg.ExtPublicKey),
		ExtSecretKey:  prefix(chaincfg.ExtSecretKey),
		HDCoinType:    p.Prefixes.HDCoinType(),

		DNSSeeds:    make([]string, 0, len(p.DNSSeeds)),
		Checkpoints: make([]checkpointSummary, 0),

		RequireStandard:    p.RequireStandard,
		MineBlocksOnDemand: p.MineBlocksOnDemand,

		SporkKey:                   p.SporkKey,
		MasternodePoolDummyAddress: p.MasternodePoolDummyAddress,
		BudgetFeeConfirmations:     p.BudgetFeeConfirmations,
	}

	for _, seed := range p.DNSSeeds {
		s.DNSSeeds = append(s.DNSSeeds, seed.String())
	}
	for _, checkpoint := range p.Checkpoints.Checkpoints {
		s.Checkpoints = append(s.Checkpoints, checkpointSummary{
			Height: checkpoint.Height,
			Hash:   checkpoint.Hash.String(),
		})
	}

	return s
}

// renderJSON writes the profile as indented JSON.
func renderJSON(w io.Writer, p *chaincfg.Params) error {
	b, err := json.MarshalIndent(summarize(p), "", "    ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}

// renderTable writes the profile as a two column table.
func renderTable(w io.Writer, p *chaincfg.Params) {
	s := summarize(p)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("CTSC %v network", s.Network)
	t.AppendHeader(table.Row{"Parameter", "Value"})

	t.AppendRows([]table.Row{
		{"message start", s.MessageStart},
		{"default port", s.DefaultPort},
		{"genesis hash", s.GenesisHash},
		{"merkle root", s.MerkleRoot},
		{"genesis time", time.Unix(s.GenesisTime, 0).UTC()},
		{"pow limit bits", s.PowLimitBits},
		{"subsidy halving interval", s.SubsidyHalvingInterval},
		{"max reorganization depth", s.MaxReorganizationDepth},
		{"block upgrade majorities", fmt.Sprintf("%d/%d/%d",
			s.EnforceBlockUpgradeMajority,
			s.RejectBlockOutdatedMajority,
			s.ToCheckBlockUpgradeMajority)},
		{"target timespan", s.TargetTimespan},
		{"target spacing", s.TargetSpacing},
		{"coinbase maturity", s.CoinbaseMaturity},
		{"max money out", s.MaxMoneyOut},
		{"last pow block", s.LastPOWBlock},
	})
	t.AppendSeparator()

	t.AppendRows([]table.Row{
		{"pubkey address prefix", s.PubKeyAddress},
		{"script address prefix", s.ScriptAddress},
		{"secret key prefix", s.SecretKey},
		{"ext public key prefix", s.ExtPublicKey},
		{"ext secret key prefix", s.ExtSecretKey},
		{"hd coin type", s.HDCoinType},
	})
	t.AppendSeparator()

	seeds := "none"
	if len(s.DNSSeeds) > 0 {
		seeds = strings.Join(s.DNSSeeds, "\n")
	}
	t.AppendRow(table.Row{"dns seeds", seeds})
	for _, checkpoint := range s.Checkpoints {
		t.AppendRow(table.Row{
			fmt.Sprintf("checkpoint %d", checkpoint.Height),
			checkpoint.Hash,
		})
	}
	t.AppendSeparator()

	t.AppendRows([]table.Row{
		{"require standard", s.RequireStandard},
		{"mine blocks on demand", s.MineBlocksOnDemand},
		{"masternode pool dummy address", s.MasternodePoolDummyAddress},
		{"budget fee confirmations", s.BudgetFeeConfirmations},
	})

	t.Render()
}
