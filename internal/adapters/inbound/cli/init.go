package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abdidvp/pkgkraft/internal/domain"
	"github.com/abdidvp/pkgkraft/internal/domain/scoring"
)

const configFileName = ".pkgkraft.yaml"

func newInitCmd() *cobra.Command {
	var (
		minScore float64
		skip     []string
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .pkgkraft.yaml configuration file",
		Long:  "Create a .pkgkraft.yaml next to the package manifest with a CI threshold and optional skipped rules.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, configFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
				}
			}

			registry := newScoreService(loggerFromContext(cmd.Context())).Registry()
			cfg := domain.ProjectConfig{MinScore: minScore, Skip: skip}
			if err := cfg.Validate(registry.Names()); err != nil {
				return err
			}

			if err := os.WriteFile(dest, []byte(generateConfig(cfg, registry)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
			return nil
		},
	}

	cmd.Flags().Float64Var(&minScore, "min", 80, "Minimum score percentage enforced by score --ci")
	cmd.Flags().StringSliceVar(&skip, "skip", nil, "Rules to leave out of the report")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .pkgkraft.yaml")

	return cmd
}

func generateConfig(cfg domain.ProjectConfig, registry *scoring.Registry) string {
	var b strings.Builder
	b.WriteString("# pkgkraft configuration\n\n")
	fmt.Fprintf(&b, "min_score: %g\n\n", cfg.MinScore)

	if len(cfg.Skip) > 0 {
		b.WriteString("skip:\n")
		for _, rule := range cfg.Skip {
			fmt.Fprintf(&b, "  - %s\n", rule)
		}
		return b.String()
	}

	b.WriteString("# skip:\n")
	for _, name := range registry.Names() {
		fmt.Fprintf(&b, "#   - %s\n", name)
	}
	return b.String()
}
