package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/ewanlister/shopfloor-scheduler/internal/config"
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/scoring"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg    *config.Config
	Engine *scoring.Engine
	Logger *zap.Logger
	Ctx    context.Context
}
