package server

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// RunAll serves every server until ctx is done or one of them fails, then
// shuts all of them down. It returns the first serve error, if any.
func RunAll(ctx context.Context, logger *logrus.Logger, servers ...Server) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, s := range servers {
		g.Go(func() error {
			if err := s.Run(); err != nil {
				logger.WithError(err).WithField("server", s.Name()).Error("server stopped with error")
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down servers")
		for _, s := range servers {
			if err := s.Shutdown(); err != nil {
				logger.WithError(err).WithField("server", s.Name()).Error("failed to shut down server")
			}
		}
		return nil
	})

	return g.Wait()
}
