package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/numbertheory/internal/render"
	"github.com/GriffinCanCode/numbertheory/internal/shared/types"
)

func toolsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the tools and their parameter ranges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			services := opts.registry.List(nil)

			if opts.format != render.Text {
				return render.Render(cmd.OutOrStdout(), opts.format, "tools", map[string]interface{}{"services": services})
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TOOL\tPARAMETERS\tDESCRIPTION")
			for _, svc := range services {
				for _, tool := range svc.Tools {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", tool.ID, describeParams(tool.Parameters), tool.Description)
				}
			}
			return tw.Flush()
		},
	}
}

func describeParams(params []types.Parameter) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		if !p.Required {
			continue
		}
		if p.Min != nil && p.Max != nil {
			parts = append(parts, fmt.Sprintf("%s [%d..%d]", p.Name, *p.Min, *p.Max))
			continue
		}
		parts = append(parts, p.Name)
	}
	return strings.Join(parts, ", ")
}
