package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/manybody/topograph/catalog"
	"github.com/manybody/topograph/config"
	"github.com/manybody/topograph/topo"
	"github.com/manybody/topograph/traverse"
)

var (
	configPath  string
	logLevel    string
	logFormat   string
	catalogPath string

	logger *slog.Logger

	rootCmd = &cobra.Command{
		Use:   "topograph",
		Short: "Build and inspect many-body lattice topologies",
		Long: `topograph reads a topology description (HCL or YAML), constructs the
graph it names, and answers structural queries: connectivity,
bipartiteness, graph distances, and lattice symmetries.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger(logLevel, logFormat, os.Stderr)
			slog.SetDefault(logger)
		},
	}

	inspectCmd = &cobra.Command{
		Use:   "inspect",
		Short: "Summarize the configured topology",
		RunE:  runInspect,
	}

	distancesCmd = &cobra.Command{
		Use:   "distances [site]",
		Short: "Print graph distances from one site, or the full matrix",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDistances,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "topology.hcl", "topology description file (.hcl, .tg, .yaml, .yml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")
	distancesCmd.Flags().StringVar(&catalogPath, "catalog", "", "catalog directory for cached distance matrices")

	rootCmd.AddCommand(inspectCmd, distancesCmd)
}

// loadGraph runs the loader and dispatcher against --config.
func loadGraph() (topo.Graph, error) {
	spec, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	g, err := config.Build(spec)
	if err != nil {
		return nil, err
	}
	logger.Debug("topology constructed",
		"config", configPath,
		"sites", g.SiteCount(),
		"edges", len(g.EdgeColors()))
	return g, nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "sites:      %d\n", g.SiteCount())
	fmt.Fprintf(out, "edges:      %d\n", len(g.EdgeColors()))
	fmt.Fprintf(out, "connected:  %v\n", traverse.IsConnected(g))
	fmt.Fprintf(out, "bipartite:  %v\n", traverse.IsBipartite(g))
	fmt.Fprintf(out, "symmetries: %d\n", len(g.SymmetryTable()))
	return nil
}

func runDistances(cmd *cobra.Command, args []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(args) == 1 {
		var site int
		if _, err := fmt.Sscanf(args[0], "%d", &site); err != nil {
			return fmt.Errorf("bad site argument %q: %w", args[0], err)
		}
		row, err := traverse.Distances(g, site)
		if err != nil {
			return err
		}
		printRow(out, row)
		return nil
	}

	matrix, err := allDistances(g)
	if err != nil {
		return err
	}
	for _, row := range matrix {
		printRow(out, row)
	}
	return nil
}

// allDistances routes through the catalog when --catalog is given, so
// repeated invocations on the same topology reuse the stored matrix.
func allDistances(g topo.Graph) ([][]int, error) {
	if catalogPath == "" {
		return traverse.AllDistances(g), nil
	}
	cat, err := catalog.Open(catalog.Opts{Path: catalogPath})
	if err != nil {
		return nil, err
	}
	defer cat.Close()
	if _, err := cat.TryAdd(g); err != nil {
		return nil, err
	}
	return cat.Distances(g)
}

func printRow(out io.Writer, row []int) {
	for i, d := range row {
		if i > 0 {
			fmt.Fprint(out, " ")
		}
		fmt.Fprint(out, d)
	}
	fmt.Fprintln(out)
}
