package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/pkgkraft/internal/adapters/outbound/tui"
)

type ruleInfo struct {
	Name        string  `json:"name"`
	Max         float64 `json:"max"`
	Description string  `json:"description"`
}

func newRulesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the scoring rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules := newScoreService(loggerFromContext(cmd.Context())).Registry().Rules()
			if !jsonOutput {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderRules(rules))
				return nil
			}

			out := make([]ruleInfo, len(rules))
			for i, r := range rules {
				out[i] = ruleInfo{Name: r.Name, Max: r.Max, Description: r.Description}
			}
			return renderJSON(cmd, out)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output rules as JSON")
	return cmd
}
