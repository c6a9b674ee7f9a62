package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Neumenon/numeral/numeral"
	"github.com/Neumenon/numeral/systems"
)

// resolveSystem finds a system by name, consulting the --defs file first
// so user definitions can shadow catalog names.
func resolveSystem(name, defsPath string) (numeral.System, error) {
	if defsPath != "" {
		defs, err := systems.LoadFile(defsPath)
		if err != nil {
			return numeral.System{}, err
		}
		if sys, ok := defs[name]; ok {
			return sys, nil
		}
	}
	if id, ok := systems.FromName(name); ok {
		return id.System(), nil
	}
	return numeral.System{}, fmt.Errorf("unknown numeral system %q", name)
}

func newRenderCmd() *cobra.Command {
	var systemName, defsPath string
	cmd := &cobra.Command{
		Use:   "render <n>...",
		Short: "Render one or more non-negative integers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := resolveSystem(systemName, defsPath)
			if err != nil {
				return err
			}
			for _, arg := range args {
				n, err := strconv.ParseUint(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("not a non-negative integer: %q", arg)
				}
				out, err := sys.Render(n)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&systemName, "system", "s", "arabic", "numeral system name")
	cmd.Flags().StringVar(&defsPath, "defs", "", "YAML file with extra system definitions")
	return cmd
}

func newTableCmd() *cobra.Command {
	var systemName, defsPath string
	var from, to uint64
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print a range of values next to their numerals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if to < from {
				return fmt.Errorf("--to must not be below --from")
			}
			sys, err := resolveSystem(systemName, defsPath)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for n := from; ; n++ {
				out, err := sys.Render(n)
				switch {
				case err == nil:
					fmt.Fprintf(w, "%d\t%s\n", n, out)
				case numeral.IsTooLarge(err):
					// Past a fixed table's capacity nothing further renders.
					slog.Warn("stopping early", "system", systemName, "at", n, "error", err)
					n = to
				default:
					fmt.Fprintf(w, "%d\t-\n", n)
				}
				if n == to {
					break
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&systemName, "system", "s", "arabic", "numeral system name")
	cmd.Flags().StringVar(&defsPath, "defs", "", "YAML file with extra system definitions")
	cmd.Flags().Uint64Var(&from, "from", 0, "first value")
	cmd.Flags().Uint64Var(&to, "to", 20, "last value")
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the predefined numeral systems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, id := range systems.All() {
				fmt.Fprintf(w, "%s\t%s\n", id.Name(), id.System().Kind())
			}
			return w.Flush()
		},
	}
}
