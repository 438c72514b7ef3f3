package cli

import (
	"errors"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"clovasummary/internal/domain"
	"clovasummary/internal/scheduler"

	"github.com/spf13/cobra"
)

func newSummarizeCmd(a *app) *cobra.Command {
	var title, content string

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Summarize a document given by flags or stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(title) == "" {
				return errors.New("--title is required")
			}

			if content == "" {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				content = string(raw)
			}

			svc, closeDB, err := a.newDigest(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB()

			record, err := svc.SummarizeText(cmd.Context(), title, content)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), record.Summary)
			return err
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&title, "title", "", "document title")
	fs.StringVar(&content, "content", "", "document content (read from stdin when empty)")

	return cmd
}

func newArticleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "article <url>",
		Short: "Fetch a web article and summarize it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeDB, err := a.newDigest(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB()

			record, err := svc.SummarizeArticle(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return printRecords(cmd.OutOrStdout(), []domain.SummaryRecord{record})
		},
	}
}

func newFeedCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "feed <url>",
		Short: "Summarize the newest items of an RSS or Atom feed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				limit = a.cfg.DigestItemLimit
			}

			svc, closeDB, err := a.newDigest(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB()

			records, summarizeErr := svc.SummarizeFeed(cmd.Context(), args[0], limit)
			if err = printRecords(cmd.OutOrStdout(), records); err != nil {
				return err
			}

			return summarizeErr
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "max feed items to summarize (default DIGEST_ITEM_LIMIT)")

	return cmd
}

func newHistoryCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored summaries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := a.openDatabase(cmd.Context())
			if err != nil {
				return err
			}
			defer a.closer(cmd.Context(), db)()

			records, err := db.ListSummaries(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list summaries: %w", err)
			}

			return printRecords(cmd.OutOrStdout(), records)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "max summaries to list")

	return cmd
}

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Digest DIGEST_FEEDS on the DIGEST_SCHEDULE cron spec until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start := time.Now()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			svc, closeDB, err := a.newDigest(ctx)
			if err != nil {
				return err
			}
			defer closeDB()

			sched := scheduler.New(ctx, a.cfg.DigestSchedule, a.cfg.DigestFeeds, a.cfg.DigestItemLimit, svc, a.log)
			if err = sched.Start(); err != nil {
				return fmt.Errorf("start scheduler: %w", err)
			}
			a.log.InfoContext(ctx, "Scheduler is started",
				"spec", a.cfg.DigestSchedule,
				"feedCount", len(a.cfg.DigestFeeds),
				"timezone", scheduler.Timezone)

			<-ctx.Done()
			a.log.InfoContext(ctx, "Shutdown signal is received",
				"uptimeSeconds", time.Since(start).Seconds())

			sched.Stop()
			a.log.InfoContext(ctx, "Scheduler is stopped",
				"uptimeSeconds", time.Since(start).Seconds())

			return nil
		},
	}
}

func printRecords(w io.Writer, records []domain.SummaryRecord) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for _, r := range records {
		created := ""
		if !r.CreatedAt.IsZero() {
			created = r.CreatedAt.UTC().Format(time.DateTime)
		}

		title := r.Title
		if title == "" {
			title = "-"
		}

		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", created, title, r.URL); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(tw, "\t%s\n", strings.ReplaceAll(r.Summary, "\n", " ")); err != nil {
			return err
		}
	}

	return tw.Flush()
}
