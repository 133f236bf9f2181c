package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	v1 "github.com/cyclonite69/shadowcheck-static-sub002/api/v1"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/config"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/export"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/services"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/store"
	srvErrors "github.com/cyclonite69/shadowcheck-static-sub002/pkg/errors"
)

func NewQueryCommand(cfg *config.Configuration) *cobra.Command {
	var (
		payload string
		xlsx    string
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run a network search against the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req v1.NetworkSearchRequest
			if err := readPayload(payload, &req); err != nil {
				return err
			}

			pool, err := store.NewPool(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			st := store.NewStore(pool)
			defer st.Close()

			srv := services.NewNetworkService(st.Networks(), nil, cfg.Query)
			result, err := srv.List(cmd.Context(), req.ToParams())
			if err != nil {
				if errs := srvErrors.ValidationErrors(err); len(errs) > 0 {
					printValidationErrors(cmd.ErrOrStderr(), errs)
				}
				return err
			}

			resp := v1.NewNetworkSearchResponse(result)
			color.New(color.FgCyan).Fprintf(cmd.ErrOrStderr(), "%d networks, page %d of %d (%s)\n",
				resp.Total, resp.Page, resp.PageCount, resp.Strategy)

			if xlsx == "" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}

			f, err := os.Create(xlsx)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", xlsx, err)
			}
			defer f.Close()
			return export.WriteXLSX(f, resp.Networks)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&payload, "payload", "-", "JSON search payload, - for stdin")
	fs.StringVar(&xlsx, "xlsx", "", "write the page to this spreadsheet instead of stdout")
	return cmd
}
