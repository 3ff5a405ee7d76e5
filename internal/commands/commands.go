// Package commands wires the taskring CLI.
package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"taskring/internal/tasklist"
	"taskring/internal/ui"
)

var version = "dev"

// runUI is swapped out in tests so the root command can run without a
// terminal.
var runUI = ui.Run

func New() *cobra.Command {
	o := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "taskring",
		Short:         "A small terminal task list with a progress ring.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd.Context(), o)
			if err != nil {
				return err
			}
			defer s.Close()

			opts := []ui.Option{ui.WithLogger(s.log), ui.WithClock(time.Now)}
			if s.db != nil {
				opts = append(opts, ui.WithSaver(s.db))
			}
			return runUI(ui.NewModel(s.tasks, s.cfg, opts...))
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&o.configPath, "config", "", "path to config TOML (default $TASKRING_CONFIG or the user config dir)")
	flags.StringVar(&o.dbPath, "db", "", "sqlite file to keep tasks in across runs")
	flags.StringVar(&o.filter, "filter", "", "filter to start with: all, active or done")
	flags.BoolVar(&o.noSeed, "no-seed", false, "start with an empty list instead of the sample tasks")

	addCommands(cmd, o)
	return cmd
}

func addCommands(topLevel *cobra.Command, o *rootOptions) {
	addStats(topLevel, o)
	addVersion(topLevel)
}

func addStats(topLevel *cobra.Command, o *rootOptions) {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print counts, progress and the filtered list.",
		Example: `
taskring stats
taskring stats --db tasks.db --filter active
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd.Context(), o)
			if err != nil {
				return err
			}
			defer s.Close()
			return printStats(cmd.OutOrStdout(), s.tasks.Tasks(), s.cfg.Filter())
		},
	}
	topLevel.AddCommand(cmd)
}

func printStats(w io.Writer, tasks []tasklist.Task, f tasklist.Filter) error {
	st := tasklist.ComputeStats(tasks)
	if _, err := fmt.Fprintf(w, "%d total · %d active · %d done · %d%%\n", st.Total, st.Active, st.Done, st.Progress); err != nil {
		return err
	}
	for _, t := range tasklist.Apply(tasks, f) {
		box := "[ ]"
		if t.Done {
			box = "[x]"
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", box, t.Text); err != nil {
			return err
		}
	}
	return nil
}

func addVersion(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the taskring version.",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "taskring %s\n", version)
		},
	}
	topLevel.AddCommand(cmd)
}
