package components

import (
	"context"
	"log/slog"
	"time"

	"stayops/internal/infra/channelapi"
	"stayops/internal/infra/session"
	"stayops/internal/pkg/clock"
	"stayops/internal/pkg/config"
	"stayops/internal/usecase"

	"go.uber.org/fx"
)

// GatewayModule wires the channel-manager HTTP client as every gateway port
// and the in-memory session repository, including its periodic sweep.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewChannelAPIClient,
			fx.As(new(usecase.BookingGateway)),
			fx.As(new(usecase.RoomGateway)),
			fx.As(new(usecase.RoomDayGateway)),
			fx.As(new(usecase.ServiceGateway)),
			fx.As(new(usecase.GuaranteeGateway)),
			fx.As(new(usecase.GuestGateway)),
		),
		fx.Annotate(
			NewSessionRepository,
			fx.As(fx.Self()),
			fx.As(new(usecase.SessionRepository)),
		),
	),
	fx.Invoke(runSessionSweep),
)

func NewChannelAPIClient(cfg config.Config, logger *slog.Logger) *channelapi.Client {
	return channelapi.NewClient(cfg.ChannelAPI, logger)
}

func NewSessionRepository(cfg config.Config, clk clock.Clock, logger *slog.Logger) *session.MemoryRepository {
	return session.NewMemoryRepository(clk, cfg.Wizard.SessionTTL, logger)
}

func runSessionSweep(lc fx.Lifecycle, cfg config.Config, repo *session.MemoryRepository) {
	var (
		ticker *time.Ticker
		done   = make(chan struct{})
	)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			ticker = time.NewTicker(cfg.Wizard.SweepInterval)
			go func() {
				for {
					select {
					case <-ticker.C:
						repo.Sweep()
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			ticker.Stop()
			close(done)
			return nil
		},
	})
}
