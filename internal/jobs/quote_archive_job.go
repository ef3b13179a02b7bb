package jobs

import (
	"context"
	"log/slog"

	"repairshop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// QuoteArchiveJob sweeps quotes whose ledgers were fully drained by partial
// conversions and archives them. Runs hourly; a drained quote is also
// archived inline by the conversion itself, so the sweeper only catches
// stragglers (for example quotes drained by manual line item removal).
type QuoteArchiveJob struct {
	handler commands.ArchiveDrainedQuotesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewQuoteArchiveJob creates a new job for archiving drained quotes.
func NewQuoteArchiveJob(handler commands.ArchiveDrainedQuotesCommandHandler, logger *slog.Logger) *QuoteArchiveJob {
	return &QuoteArchiveJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "quote_archive_job"),
	}
}

// Start begins the quote archive job to run at the top of every hour.
func (j *QuoteArchiveJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewArchiveDrainedQuotesCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Quote archive job could not build command", "error", cmdErr)
			return
		}

		archived, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Quote archive job failed", "error", handleErr)
			return
		}

		if archived > 0 {
			j.logger.InfoContext(ctx, "Archived drained quotes", "count", archived)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Quote archive job started (running hourly)")
	return nil
}

// Stop stops the quote archive job.
func (j *QuoteArchiveJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Quote archive job stopped")
}
