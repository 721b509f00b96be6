package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/abdidvp/pkgkraft/internal/adapters/outbound/config"
	"github.com/abdidvp/pkgkraft/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/pkgkraft/internal/adapters/outbound/license"
	"github.com/abdidvp/pkgkraft/internal/adapters/outbound/manifest"
	"github.com/abdidvp/pkgkraft/internal/adapters/outbound/semver"
	"github.com/abdidvp/pkgkraft/internal/adapters/outbound/tui"
	"github.com/abdidvp/pkgkraft/internal/application"
	"github.com/abdidvp/pkgkraft/internal/domain"
)

func newScoreCmd() *cobra.Command {
	var (
		jsonOutput bool
		ciMode     bool
		minScore   float64
		badge      bool
		workspaces bool
	)

	cmd := &cobra.Command{
		Use:   "score [path]",
		Short: "Score a package manifest",
		Long:  "Load the package.json (or package.yaml) at path and score its metadata against every registered rule.",
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

			logger := loggerFromContext(cmd.Context())
			svc := newScoreService(logger)

			threshold := minScore
			if ciMode && !cmd.Flags().Changed("min") {
				cfg, err := config.New().Load(absPath)
				if err != nil {
					return fmt.Errorf("loading config: %w", err)
				}
				threshold = cfg.MinScore
			}

			if workspaces {
				ws := application.NewWorkspaceService(manifest.New(), svc)
				reports, err := ws.ScoreWorkspace(cmd.Context(), absPath)
				if err != nil {
					return fmt.Errorf("scoring failed: %w", err)
				}
				if jsonOutput {
					if err := renderJSON(cmd, reports); err != nil {
						return err
					}
				} else {
					fmt.Fprint(cmd.OutOrStdout(), tui.RenderWorkspace(reports))
				}
				if ciMode {
					for _, pr := range reports {
						if err := checkThreshold(pr.Report, threshold); err != nil {
							return fmt.Errorf("%s: %w", pr.Path, err)
						}
					}
				}
				return nil
			}

			report, err := svc.ScorePackage(absPath)
			if err != nil {
				return fmt.Errorf("scoring failed: %w", err)
			}

			attachCommit(report, gitinfo.New(), absPath, logger)

			switch {
			case jsonOutput:
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			case badge:
				renderBadge(cmd, report)
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			if ciMode {
				return checkThreshold(report, threshold)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if below --min (or min_score from config)")
	cmd.Flags().Float64Var(&minScore, "min", 0, "Minimum score percentage (0-100) for CI mode")
	cmd.Flags().BoolVar(&badge, "badge", false, "Output shields.io badge URL")
	cmd.Flags().BoolVar(&workspaces, "workspaces", false, "Score every npm workspace package")

	return cmd
}

func newScoreService(logger *log.Logger) *application.ScoreService {
	return application.NewScoreService(
		manifest.New(),
		license.New(),
		semver.New(),
		config.New(),
	).WithLogger(logger)
}

// attachCommit records the HEAD commit of the repository holding path, when
// there is one.
func attachCommit(report *domain.Report, git domain.GitInfo, path string, logger *log.Logger) {
	if !git.IsGitRepo(path) {
		logger.Debug("not a git repository", "path", path)
		return
	}
	hash, err := git.CommitHash(path)
	if err != nil {
		logger.Debug("no commit hash", "path", path, "err", err)
		return
	}
	report.CommitHash = hash
}

func checkThreshold(report *domain.Report, minPercent float64) error {
	if pct := report.Overall.Ratio(); pct < minPercent {
		return fmt.Errorf("score %.2f%% is below minimum %g%%", pct, minPercent)
	}
	return nil
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderBadge(cmd *cobra.Command, report *domain.Report) {
	color := domain.BadgeColor(report.Overall.Percent())
	points := strconv.FormatFloat(report.Overall.Achieved, 'f', -1, 64) + "%2F" +
		strconv.FormatFloat(report.Overall.Maximum, 'f', -1, 64)
	url := fmt.Sprintf("https://img.shields.io/badge/pkgkraft-%s-%s", points, color)
	fmt.Fprintln(cmd.OutOrStdout(), url)
}
