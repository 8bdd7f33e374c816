// Package main provides the servicetordf binary entry point.
// It maps a YAML public-service catalog to RDF and writes the chosen
// serialization, optionally publishing the graph for ingestion over NATS.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/katalogdata/servicetordf/catalog"
	"github.com/katalogdata/servicetordf/mapper"
	"github.com/katalogdata/servicetordf/publish"
	"github.com/katalogdata/servicetordf/rdf"
	"github.com/katalogdata/servicetordf/skolem"
)

const (
	Version = "0.1.0"
	appName = "servicetordf"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Map public-service catalogs to RDF",
		Long: `Servicetordf maps a public-service catalog (services, competent
organizations, legal resources, rules, evidences and events) to an RDF
graph following the CPSV-AP / DCAT-AP-NO vocabulary.

Entities without an identifier get skolem URIs; assign identifiers in
the catalog document when you need stable output across runs.`,
	}

	cmd.AddCommand(mapCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("%s version %s\n", appName, Version)
		},
	})

	return cmd
}

func mapCmd() *cobra.Command {
	var (
		format   string
		baseURI  string
		mintURL  string
		output   string
		natsURL  string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "map <catalog.yaml>",
		Short: "Map a catalog document to RDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(logLevel)
			return runMap(cmd.Context(), args[0], mapOptions{
				format:  rdf.Format(format),
				baseURI: baseURI,
				mintURL: mintURL,
				output:  output,
				natsURL: natsURL,
			}, logger)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(rdf.FormatTurtle), "Output format (turtle, ntriples, jsonld)")
	cmd.Flags().StringVar(&baseURI, "base", "", "Base URI for locally minted skolem identifiers")
	cmd.Flags().StringVar(&mintURL, "mint-url", "", "Remote identifier-minting service endpoint (overrides --base)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&natsURL, "nats", "", "NATS URL to publish the mapped graph to")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	return cmd
}

type mapOptions struct {
	format  rdf.Format
	baseURI string
	mintURL string
	output  string
	natsURL string
}

func runMap(ctx context.Context, path string, opts mapOptions, logger *slog.Logger) error {
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return err
	}

	var minter skolem.Minter
	if opts.mintURL != "" {
		minter = skolem.NewHTTPMinter(opts.mintURL, skolem.WithLogger(logger))
	} else {
		minter = skolem.NewLocalMinter(opts.baseURI)
	}

	m := mapper.New(minter, mapper.WithLogger(logger))
	g := mapper.NewGraph()
	subject, err := m.MapCatalog(ctx, cat, g)
	if err != nil {
		return fmt.Errorf("map catalog: %w", err)
	}
	logger.Info("mapped catalog",
		slog.String("subject", subject),
		slog.Int("triples", g.Len()))

	data, err := g.Serialize(opts.format)
	if err != nil {
		return err
	}

	if opts.natsURL != "" {
		nc, err := nats.Connect(opts.natsURL)
		if err != nil {
			return fmt.Errorf("connect to NATS: %w", err)
		}
		defer nc.Close()
		if err := publish.New(nc).PublishGraph(ctx, subject, g); err != nil {
			return err
		}
	}

	if opts.output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(opts.output, data, 0o644)
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
