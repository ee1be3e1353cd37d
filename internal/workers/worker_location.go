package workers

import (
	"context"

	"github.com/notesapp/pocketnotes/internal/logger"
)

// locationSampler is the slice of the location sampler the worker needs.
type locationSampler interface {
	Start(ctx context.Context) error
	Stop() error
}

// LocationWorker starts continuous location sampling in the background and
// stops it when the application context winds down. A refused permission is
// logged rather than fatal; the rest of the application keeps working
// without location history.
type LocationWorker struct {
	ctx     context.Context
	sampler locationSampler
	logger  *logger.Logger
}

func NewLocationWorker(ctx context.Context, sampler locationSampler, logger *logger.Logger) *LocationWorker {
	return &LocationWorker{
		ctx:     ctx,
		sampler: sampler,
		logger:  logger,
	}
}

func (w *LocationWorker) Run() {
	go func() {
		if err := w.sampler.Start(w.ctx); err != nil {
			w.logger.Warn().Err(err).Str("func", "LocationWorker.Run").Msg("continuous location sampling unavailable")
			return
		}

		<-w.ctx.Done()

		if err := w.sampler.Stop(); err != nil {
			w.logger.Warn().Err(err).Str("func", "LocationWorker.Run").Msg("location sampling did not stop cleanly")
		}
	}()
}
