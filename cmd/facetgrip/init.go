package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"facetgrip/internal/config"
	"facetgrip/internal/search"
)

func initCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config and a sample catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := config.NewConfigServiceAt(configPath)
			path := svc.Path()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			cfg := config.DefaultConfig()
			catalog := filepath.Join(filepath.Dir(path), "catalog.toml")
			cfg.Search.Catalog = catalog
			if err := svc.Save(cfg); err != nil {
				return err
			}
			if err := os.WriteFile(catalog, search.SampleCatalogTOML(), 0644); err != nil {
				return fmt.Errorf("failed to write catalog: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\nWrote %s\n", path, catalog)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config")
	return cmd
}
