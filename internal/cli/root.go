package cli

import (
	"context"
	"io"
	"log/slog"

	"clovasummary/internal/clova"
	"clovasummary/internal/config"

	"github.com/spf13/cobra"
)

// Run executes the command line. Logs go to logOut as JSON; summaries go to
// the command's stdout.
func Run(ctx context.Context, args []string, settings clova.Settings, logOut io.Writer) error {
	root := newRootCmd(settings, logOut)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func newRootCmd(settings clova.Settings, logOut io.Writer) *cobra.Command {
	level := new(slog.LevelVar)
	a := &app{
		settings: settings,
		log:      slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{Level: level})),
		level:    level,
	}

	cmd := &cobra.Command{
		Use:           "clovasummary",
		Short:         "Summarize news with the Clova summarization API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			lvl, err := parseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.level.Set(lvl)

			return nil
		},
	}

	fs := cmd.PersistentFlags()
	fs.StringVarP(&a.language, "language", "l", "", "summary language: ko|ja (default SUMMARY_LANGUAGE)")
	fs.StringVarP(&a.model, "model", "m", "", "summary model: general|news (default SUMMARY_MODEL)")
	fs.StringVarP(&a.tone, "tone", "t", "", "summary tone: 0-3 or name (default SUMMARY_TONE)")
	fs.IntVarP(&a.count, "count", "n", 0, "number of summary sentences (default SUMMARY_COUNT)")

	cmd.AddCommand(
		newSummarizeCmd(a),
		newArticleCmd(a),
		newFeedCmd(a),
		newHistoryCmd(a),
		newServeCmd(a),
	)

	return cmd
}
