// numeral - render integers in the numeral systems of the world
//
// Usage:
//
//	numeral render 1994 --system roman          mcmxciv
//	numeral render 27 --system latin            aa
//	numeral table --system circled --to 10      aligned n → numeral table
//	numeral list                                predefined system names
//
// Custom systems can be supplied as a YAML file via --defs; names defined
// there shadow the predefined catalog.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "numeral",
		Short:         "Render integers in positional, bijective, sign-value, symbolic, fixed and Chinese numeral systems",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRenderCmd(), newTableCmd(), newListCmd())
	return root
}
