package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	v1 "github.com/cyclonite69/shadowcheck-static-sub002/api/v1"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/config"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/models"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/query"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/services"
	srvErrors "github.com/cyclonite69/shadowcheck-static-sub002/pkg/errors"
)

func NewExplainCommand(cfg *config.Configuration) *cobra.Command {
	var (
		payload string
		shape   string
		kind    string
	)

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Compile a filter payload and print the SQL without running it",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req v1.ExplainRequest
			if err := readPayload(payload, &req); err != nil {
				return err
			}
			if cmd.Flags().Changed("shape") || req.Shape == "" {
				req.Shape = shape
			}
			if cmd.Flags().Changed("kind") || req.Kind == "" {
				req.Kind = kind
			}

			srv := services.NewNetworkService(nil, nil, cfg.Query)
			result, err := srv.Explain(req.ToParams())
			if err != nil {
				if errs := srvErrors.ValidationErrors(err); len(errs) > 0 {
					printValidationErrors(cmd.ErrOrStderr(), errs)
				}
				return err
			}
			return printExplain(cmd.OutOrStdout(), result)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&payload, "payload", "-", "JSON payload file with filters and enabled, - for stdin")
	fs.StringVar(&shape, "shape", string(query.ShapeList), "query shape (list, count, geospatial, analytics)")
	fs.StringVar(&kind, "kind", string(query.AnalyticsRadioTypes), "aggregate kind for the analytics shape")
	return cmd
}

func printExplain(w io.Writer, r *models.QueryResult) error {
	heading := color.New(color.FgCyan, color.Bold)
	applied := color.New(color.FgGreen)
	ignored := color.New(color.FgYellow)
	warning := color.New(color.FgRed)

	heading.Fprintf(w, "strategy: %s\n\n", r.Strategy)
	fmt.Fprintln(w, r.SQL)

	params, err := json.Marshal(r.Params)
	if err != nil {
		return fmt.Errorf("failed to encode params: %w", err)
	}
	heading.Fprintln(w, "\nparams:")
	fmt.Fprintln(w, string(params))

	heading.Fprintln(w, "\napplied:")
	for _, f := range r.AppliedFilters {
		applied.Fprintf(w, "  %-24s %-10s %v\n", f.Field, f.Dimension, f.Value)
	}
	heading.Fprintln(w, "ignored:")
	for _, f := range r.IgnoredFilters {
		ignored.Fprintf(w, "  %-24s %-10s %s\n", f.Field, f.Dimension, f.Reason)
	}
	if len(r.Warnings) > 0 {
		heading.Fprintln(w, "warnings:")
		for _, msg := range r.Warnings {
			warning.Fprintf(w, "  %s\n", msg)
		}
	}
	return nil
}

func printValidationErrors(w io.Writer, errs []models.ValidationError) {
	red := color.New(color.FgRed)
	for _, e := range errs {
		red.Fprintf(w, "%s: %s\n", e.Field, e.Message)
	}
}
