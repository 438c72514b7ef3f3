package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"clovasummary/internal/domain"

	"github.com/robfig/cron/v3"
)

const (
	Timezone              = "UTC"
	TimezoneOffsetSeconds = 0
	digestFeedsTimeout    = 15 * time.Minute
)

type feedDigester interface {
	SummarizeFeed(ctx context.Context, feedURL string, limit int) ([]domain.SummaryRecord, error)
}

type Scheduler struct {
	ctx       context.Context
	cron      *cron.Cron
	spec      string
	feeds     []string
	itemLimit int
	digester  feedDigester
	log       *slog.Logger
}

func New(
	ctx context.Context,
	spec string,
	feeds []string,
	itemLimit int,
	digester feedDigester,
	log *slog.Logger,
) *Scheduler {
	c := cron.New(cron.WithLocation(time.FixedZone(Timezone, TimezoneOffsetSeconds)))

	var trimmed []string
	for _, f := range feeds {
		if f = strings.TrimSpace(f); f != "" {
			trimmed = append(trimmed, f)
		}
	}

	return &Scheduler{
		ctx:       ctx,
		cron:      c,
		spec:      spec,
		feeds:     trimmed,
		itemLimit: itemLimit,
		digester:  digester,
		log:       log,
	}
}

func (s *Scheduler) Start() error {
	if len(s.feeds) == 0 {
		return errors.New("no feeds to digest")
	}

	if _, err := s.cron.AddFunc(s.spec, s.digestFeeds); err != nil {
		return err
	}

	s.cron.Start()

	return nil
}

// Stop halts the schedule and waits for a running digest to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) digestFeeds() {
	ctx, cancel := context.WithTimeout(s.ctx, digestFeedsTimeout)
	defer cancel()

	for _, feedURL := range s.feeds {
		if ctx.Err() != nil {
			s.log.InfoContext(ctx, "Scheduler context is done",
				"error", ctx.Err())
			return
		}

		records, err := s.digester.SummarizeFeed(ctx, feedURL, s.itemLimit)
		if err != nil {
			s.log.ErrorContext(ctx, "Failed to digest feed",
				"error", err,
				"feedURL", feedURL,
				"summaryCount", len(records))

			continue
		}

		s.log.InfoContext(ctx, "Feed is digested",
			"feedURL", feedURL,
			"summaryCount", len(records))
	}
}
