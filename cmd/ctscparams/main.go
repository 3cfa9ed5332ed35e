// Command ctscparams prints the parameters of a CTSC network. It builds every
// network profile, which verifies the compiled in genesis blocks, selects the
// network chosen on the command line and prints it as a table or as JSON.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ctscoin/ctscd/chaincfg"
	flags "github.com/jessevdk/go-flags"
)

func main() {
	cfg, err := LoadConfig(os.Args[1:])
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			// Print error if not due to help request.
			_, _ = fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Help was requested, exit normally.
		os.Exit(0)
	}

	err = run(cfg, os.Stdout)
	_ = cfg.LogRotator.Close()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run builds the registry, selects the configured network and prints it to w.
func run(cfg *Config, w io.Writer) error {
	registry, err := chaincfg.NewRegistry(nil)
	if err != nil {
		ctscLog.Criticalf("Unable to construct network params: %v", err)
		return err
	}

	if err := registry.SelectNetwork(cfg.Network); err != nil {
		return err
	}
	params := registry.Active()

	ctscLog.Infof("Printing %v network params", params.Name)

	if cfg.JSON {
		return renderJSON(w, params)
	}
	renderTable(w, params)

	return nil
}
