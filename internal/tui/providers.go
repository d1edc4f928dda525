package tui

import (
	"github.com/google/wire"

	"github.com/wandb/wandb/stopwatch/internal/clock"
	"github.com/wandb/wandb/stopwatch/internal/stopwatch"
)

var modelBindings = wire.NewSet(
	clock.New,
	stopwatch.New,
	NewConfigManager,
	NewModel,
)
