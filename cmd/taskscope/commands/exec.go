package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/taskscope/internal/app"
)

func (c *CLI) newExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec [task paths...]",
		Short: "Execute workspace tasks, all of them when none are given",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			parallelism, _ := cmd.Flags().GetInt("parallel")
			reportPath, _ := cmd.Flags().GetString("report")
			jsonLogs, _ := cmd.Flags().GetBool("json")

			return c.app.Run(cmd.Context(), args, app.RunOptions{
				ConfigPath:  configPath,
				Parallelism: parallelism,
				ReportPath:  reportPath,
				JSON:        jsonLogs,
			})
		},
	}
	cmd.Flags().StringP("config", "c", app.DefaultConfigPath, "Path to the workspace configuration file")
	cmd.Flags().IntP("parallel", "j", 0, "Maximum number of tasks run at once (default from configuration)")
	cmd.Flags().String("report", "", "Write the problems report to this file")
	cmd.Flags().Bool("json", false, "Emit logs as JSON")
	return cmd
}
