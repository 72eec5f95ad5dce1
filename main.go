// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/cybrota/lanedodge/road"
	"github.com/spf13/cobra"
)

// loadIndex builds an index from config and fills it from the records at
// path, if any.
func loadIndex(config *Config, path string) (*road.Index, error) {
	idx := road.NewIndex(config.IndexOptions()...)
	if path == "" {
		return idx, nil
	}

	records, err := road.LoadRecords(path)
	if err != nil {
		return nil, err
	}
	inserted, refused := road.Populate(idx, records)
	log.Printf("loaded %s: %d obstacles inserted, %d refused", path, inserted, refused)
	return idx, nil
}

func loadConfigOrDefault() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	return config
}

func main() {
	asciiLogo := `
╦  ╔═╗╔╗╔╔═╗╔╦╗╔═╗╔╦╗╔═╗╔═╗
║  ╠═╣║║║║╣  ║║║ ║ ║║║ ╦║╣
╩═╝╩ ╩╝╚╝╚═╝═╩╝╚═╝═╩╝╚═╝╚═╝
Balanced obstacle index for lane-based road games [Version: %s%s%s]

`
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)
	log.SetPrefix("lanedodge: ")

	var cmdLoad = &cobra.Command{
		Use:   "load <file>",
		Short: "Load obstacle records and print traversals",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Load reads a JSON or YAML obstacle file into the index and prints its traversal orders`),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := ordersFromFlag(cmd.Flag("order").Value.String())
			if err != nil {
				return err
			}
			idx, err := loadIndex(loadConfigOrDefault(), args[0])
			if err != nil {
				return err
			}

			styles := NewStyles()
			out := cmd.OutOrStdout()
			for _, order := range orders {
				fmt.Fprintln(out, renderTraversal(styles, idx, order))
			}
			fmt.Fprintln(out, renderStats(styles, idx.Stats()))
			return nil
		},
	}
	cmdLoad.Flags().String("order", "all", "traversal order: inorder, preorder, postorder, breadthfirst or all")

	var cmdPrint = &cobra.Command{
		Use:   "print <file>",
		Short: "Draw the index tree of an obstacle file",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Print draws the balanced tree built from an obstacle file`),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := loadIndex(loadConfigOrDefault(), args[0])
			if err != nil {
				return err
			}

			var b strings.Builder
			if err := idx.Fprint(&b); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), b.String())

			copyFlag, _ := cmd.Flags().GetBool("copy")
			if copyFlag {
				if err := clipboard.WriteAll(b.String()); err != nil {
					return fmt.Errorf("failed to copy to clipboard: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s📋 Tree copied to clipboard%s\n", Green, Reset)
			}
			return nil
		},
	}
	cmdPrint.Flags().Bool("copy", false, "copy the drawing to the clipboard")

	var cmdScript = &cobra.Command{
		Use:   "script <file|->",
		Short: "Run index commands from a file or stdin",
		Long:  fmt.Sprintf("%s\n%s\n\n%s", asciiLogo, `Script runs one index command per line and stops at the first failure`, scriptHelp),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open script: %w", err)
				}
				defer f.Close()
				in = f
			}

			idx, err := loadIndex(loadConfigOrDefault(), "")
			if err != nil {
				return err
			}
			return NewSession(idx, cmd.OutOrStdout(), NewStyles()).Run(in)
		},
	}

	var cmdSimulate = &cobra.Command{
		Use:   "simulate",
		Short: "Run a headless spawn and despawn workload",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Simulate spawns obstacles in lanes, moves them down the road and removes them once off-screen, checking the tree invariants as it goes`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfigOrDefault()
			if cmd.Flags().Changed("ticks") {
				config.Simulate.Ticks, _ = cmd.Flags().GetInt("ticks")
			}
			if cmd.Flags().Changed("seed") {
				config.Simulate.Seed, _ = cmd.Flags().GetInt64("seed")
			}
			if err := config.Validate(); err != nil {
				return err
			}

			noProgress, _ := cmd.Flags().GetBool("no-progress")
			_, err := runSimulation(cmd.OutOrStdout(), config, !noProgress)
			return err
		},
	}
	cmdSimulate.Flags().Int("ticks", 0, "number of ticks to simulate (overrides the config)")
	cmdSimulate.Flags().Int64("seed", 0, "random seed (overrides the config)")
	cmdSimulate.Flags().Bool("no-progress", false, "hide the progress bar")

	var cmdInspect = &cobra.Command{
		Use:   "inspect [file]",
		Short: "Open the interactive index inspector",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Inspect opens a terminal UI showing the tree and its traversal orders`),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			idx, err := loadIndex(loadConfigOrDefault(), path)
			if err != nil {
				return err
			}
			return runInspector(idx)
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show or create the configuration file",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings displays the current configuration and creates ~/.lanedodge.yaml if missing`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print lanedodge usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the lanedodge CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print lanedodge version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:          "lanedodge",
		Version:      version,
		Long:         asciiLogo,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(cmdLoad, cmdPrint, cmdScript, cmdSimulate, cmdInspect, cmdSettings, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
