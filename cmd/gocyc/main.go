// Copyright (C) 2014-2026, SRI International. All rights reserved.
// See the file LICENSE for licensing terms.

// Command gocyc is a small console for a running Pathway Tools server: send
// one-shot queries, list organisms, or talk to the Lisp socket interactively.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/gocyc/gocyc"
)

const historyFile = ".gocyc_history"

var (
	flagHost   string
	flagPort   int
	flagConfig string
	flagDebug  bool
	flagOrg    string
)

var rootCmd = &cobra.Command{
	Use:   "gocyc",
	Short: "Console for a running Pathway Tools server",
	Long: "gocyc talks to the Lisp evaluation socket of a running Pathway Tools\n" +
		"application (start it with: pathway-tools -lisp -python).",
}

var orgidsCmd = &cobra.Command{
	Use:   "orgids",
	Short: "List the orgids known to the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		orgids, err := gocyc.AllOrgids(cmd.Context(), buildConfig(cmd))
		if err != nil {
			return err
		}
		return printResult(orgids)
	},
}

var queryCmd = &cobra.Command{
	Use:   "query <expression>",
	Short: "Send one expression and print the decoded result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := buildConfig(cmd)
		var (
			r   any
			err error
		)
		if flagOrg != "" {
			var pg *gocyc.PGDB
			pg, err = gocyc.SelectOrganism(cmd.Context(), flagOrg, cfg)
			if err != nil {
				return err
			}
			r, err = pg.Eval(cmd.Context(), args[0])
		} else {
			r, err = gocyc.SendQuery(cmd.Context(), cfg, args[0])
		}
		if err != nil {
			return err
		}
		return printResult(r)
	},
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive query loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := buildConfig(cmd)

		var pg *gocyc.PGDB
		if flagOrg != "" {
			var err error
			pg, err = gocyc.SelectOrganism(cmd.Context(), flagOrg, cfg)
			if err != nil {
				return err
			}
			fmt.Printf("selected organism %s\n", pg.OrgID())
		}

		ln := liner.NewLiner()
		defer ln.Close()
		ln.SetCtrlCAborts(true)

		histPath := historyPath()
		if f, err := os.Open(histPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				ln.WriteHistory(f)
				f.Close()
			}
		}()

		fmt.Println("gocyc REPL. Ctrl+D or :quit exits.")
		for {
			line, err := ln.Prompt("gocyc> ")
			if err != nil {
				// Ctrl+C aborts the line, Ctrl+D ends the session.
				if err == liner.ErrPromptAborted {
					continue
				}
				fmt.Println()
				return nil
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if line == ":quit" || line == ":q" {
				return nil
			}
			ln.AppendHistory(line)

			r, err := evalLine(cmd.Context(), pg, cfg, line)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				continue
			}
			if err := printResult(r); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
		}
	},
}

func evalLine(ctx context.Context, pg *gocyc.PGDB, cfg gocyc.Config, line string) (any, error) {
	if pg != nil {
		return pg.Eval(ctx, line)
	}
	return gocyc.SendQuery(ctx, cfg, line)
}

func buildConfig(cmd *cobra.Command) gocyc.Config {
	cfg := gocyc.DefaultConfig()
	if flagConfig != "" {
		loaded, err := gocyc.LoadConfig(flagConfig)
		if err != nil {
			exitErr("load config", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("host") {
		cfg.Host = flagHost
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = flagPort
	}
	if flagDebug {
		cfg.Debug = true
	}
	return cfg
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}

func printResult(r any) error {
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagHost, "host", gocyc.DefaultHost, "Pathway Tools host")
	rootCmd.PersistentFlags().IntVar(&flagPort, "port", gocyc.DefaultPort, "Pathway Tools Python server port")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Trace queries and responses")
	rootCmd.PersistentFlags().StringVarP(&flagOrg, "org", "o", "", "Organism (orgid) to scope queries to")
	rootCmd.AddCommand(orgidsCmd, queryCmd, replCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
