// Command guardianctl drives the router and the threat pipeline from a terminal.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"finpal-guardian/config"
	"finpal-guardian/internal/app"
	"finpal-guardian/internal/guardian"
	"finpal-guardian/internal/model"
	"finpal-guardian/internal/threat"
	"finpal-guardian/pkg/log"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

type rootFlags struct {
	configPath string
	logLevel   string
	output     string
}

// builder is swapped in tests.
var builder = func(ctx context.Context, cfg *config.Config, l log.Logger) (*app.App, error) {
	return app.Build(ctx, cfg, l)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:           "guardianctl",
		Short:         "FinPal Guardian command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to config.yaml (default: ./config, ., /etc/app)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&flags.output, "output", "o", formatJSON, "Output format (json, yaml)")

	rootCmd.AddCommand(newRouteCmd(flags), newPatternsCmd(flags), newHarvestCmd(flags))
	return rootCmd
}

func newRouteCmd(flags *rootFlags) *cobra.Command {
	var (
		hint     string
		language string
		fileID   string
		metadata []string
	)

	cmd := &cobra.Command{
		Use:   "route [text]",
		Short: "Route one message and print the envelope",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := parseMetadata(metadata)
			if err != nil {
				return err
			}

			req := guardian.InboundRequest{
				Text:     strings.Join(args, " "),
				Language: language,
				FileID:   fileID,
				Metadata: meta,
			}
			if hint != "" {
				req.RouteHint = model.Category(strings.ToUpper(strings.TrimSpace(hint)))
				if c, err := model.ParseCategory(hint); err == nil {
					req.RouteHint = c
				}
			}

			return withApp(cmd, flags, func(ctx context.Context, a *app.App) error {
				env := a.Guardian.Route(ctx, req)
				if err := render(cmd.OutOrStdout(), flags.output, env); err != nil {
					return err
				}
				if env.Failed() {
					return fmt.Errorf("routing failed: %s", env.Error.Message)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&hint, "hint", "", "Route hint (DOCUMENT_RISK, KNOWLEDGE_QA, THREAT_TRIAGE)")
	cmd.Flags().StringVar(&language, "lang", model.DefaultLanguage, "Language tag")
	cmd.Flags().StringVar(&fileID, "file-id", "", "Document identifier for DOCUMENT_RISK")
	cmd.Flags().StringArrayVar(&metadata, "meta", nil, "Metadata as key=value, repeatable")
	return cmd
}

func newPatternsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List the known scam patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, flags, func(ctx context.Context, a *app.App) error {
				patterns, err := a.Threat.ListPatterns(ctx)
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), flags.output, patterns)
			})
		},
	}
}

func newHarvestCmd(flags *rootFlags) *cobra.Command {
	var input threat.HarvestInput

	cmd := &cobra.Command{
		Use:   "harvest",
		Short: "Extract new scam patterns from recent news",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, flags, func(ctx context.Context, a *app.App) error {
				out, err := a.Threat.Harvest(ctx, input)
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), flags.output, out)
			})
		},
	}

	cmd.Flags().StringVar(&input.Query, "query", "", "NewsAPI query (default: upi scam fraud)")
	cmd.Flags().StringVar(&input.Language, "lang", "", "Article language (default: en)")
	cmd.Flags().IntVar(&input.PageSize, "page-size", 0, "Articles to fetch, at most 100 (default: 20)")
	return cmd
}

func withApp(cmd *cobra.Command, flags *rootFlags, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}

	l := log.Init(log.ZapConfig{
		Level:    flags.logLevel,
		Mode:     "production",
		Encoding: "console",
	})

	ctx := cmd.Context()
	a, err := builder(ctx, cfg, l)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFile(path)
}

func parseMetadata(pairs []string) (map[string]any, error) {
	meta := make(map[string]any, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --meta %q, want key=value", p)
		}
		meta[k] = v
	}
	return meta, nil
}

func render(w io.Writer, format string, v any) error {
	switch format {
	case formatYAML:
		// Round-trip through JSON so yaml keys follow the json tags.
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var generic any
		if err := json.Unmarshal(raw, &generic); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(generic)
	case formatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
