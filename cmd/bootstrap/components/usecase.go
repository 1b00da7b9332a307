package components

import (
	"stayops/internal/pkg/clock"
	"stayops/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
		usecase.NewWizardCommands,
	),
)
