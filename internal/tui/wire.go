//go:build wireinject

package tui

import (
	"github.com/google/wire"
	"github.com/spf13/afero"

	"github.com/wandb/wandb/stopwatch/internal/observability"
)

func InjectModel(
	fs afero.Fs,
	configPath ConfigPath,
	logger *observability.CoreLogger,
) *Model {
	wire.Build(modelBindings)
	return &Model{}
}
