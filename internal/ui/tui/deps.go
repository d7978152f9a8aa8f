package tui

import (
	"context"
	"time"

	"github.com/m-zajac/repodash/internal/render"
	"github.com/sirupsen/logrus"
)

// Dashboard is the query orchestrator driven by the UI.
type Dashboard interface {
	Init(ctx context.Context) <-chan struct{}
	Run(ctx context.Context) error
}

type Deps struct {
	Dashboard Dashboard
	Controls  *Controls

	Outliers *render.Region
	Activity *render.Region
	Words    *render.Region

	DebounceDelay time.Duration
	Logger        logrus.FieldLogger
}
