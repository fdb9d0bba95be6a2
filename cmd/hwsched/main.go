// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command hwsched assigns sensitivity domains to an ordering graph described
// in YAML and prints the resulting signal/domain report.
//
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/db47h/hwsched"
	"github.com/db47h/hwsched/internal/config"
	"github.com/db47h/hwsched/sense"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "hwsched",
		Short:        "Sensitivity domain assignment for HDL ordering graphs",
		Version:      version,
		SilenceUsage: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.AddCommand(newDomainsCmd(), newParseCmd(), newVersionCmd())
	return root
}

type domainsFlags struct {
	config         string
	tag            string
	dumpDir        string
	dumpLevel      int
	dumpGraphLevel int
	logLevel       string
	report         bool
}

func newDomainsCmd() *cobra.Command {
	var f domainsFlags
	cmd := &cobra.Command{
		Use:   "domains GRAPH.yaml",
		Short: "Assign sensitivity domains and remove dead logic",
		Long: `Load an ordering graph, assign a sensitivity domain to every vertex and
remove the logic that nothing triggers.

Settings are read from the --config file, then HWSCHED_* environment
variables, then command line flags.

Examples:
  hwsched domains design.yaml --report
  hwsched domains design.yaml --dump-level 1 --dump-graph-level 1 --dump-dir /tmp`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDomains(cmd, args[0], &f)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.config, "config", "c", "", "configuration file")
	fl.StringVar(&f.tag, "tag", "", "prefix of debug file names")
	fl.StringVar(&f.dumpDir, "dump-dir", "", "directory for debug files")
	fl.IntVar(&f.dumpLevel, "dump-level", 0, "write the signal/domain report file when > 0")
	fl.IntVar(&f.dumpGraphLevel, "dump-graph-level", 0, "write the Graphviz dump when > 0")
	fl.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	fl.BoolVarP(&f.report, "report", "r", false, "print the signal/domain report")
	return cmd
}

func runDomains(cmd *cobra.Command, path string, f *domainsFlags) error {
	c, err := config.Load(f.config)
	if err != nil {
		return err
	}
	fl := cmd.Flags()
	if fl.Changed("tag") {
		c.Tag = f.tag
	}
	if fl.Changed("dump-dir") {
		c.DumpDir = f.dumpDir
	}
	if fl.Changed("dump-level") {
		c.DumpLevel = f.dumpLevel
	}
	if fl.Changed("dump-graph-level") {
		c.DumpGraphLevel = f.dumpGraphLevel
	}
	if fl.Changed("log-level") {
		c.LogLevel = f.logLevel
	}
	if err = c.Validate(); err != nil {
		return err
	}

	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: c.SlogLevel()}))

	r, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open graph")
	}
	defer r.Close()
	d, err := hwsched.LoadDesign(r)
	if err != nil {
		return errors.Wrap(err, path)
	}
	log.Debug("graph loaded", "file", path, "vertices", d.Graph.Len(), "edges", d.Graph.EdgeCount())

	res, err := d.ProcessDomains(hwsched.WithConfig(c), hwsched.WithLogger(log))
	if err != nil {
		return err
	}
	if f.report {
		if err = hwsched.WriteDomainReport(cmd.OutOrStdout(), d.Graph); err != nil {
			return err
		}
	}
	for _, name := range res.Removed {
		log.Info("dead logic removed", "logic", name)
	}
	return nil
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse EXPR",
		Short: "Print the canonical form of a sensitivity expression",
		Example: `  hwsched parse '@(negedge rst_n or posedge clk)'
  hwsched parse '*'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := hwsched.ParseTree(sense.NewStore(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), t)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "hwsched", version)
		},
	}
}
