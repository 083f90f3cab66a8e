//go:build stub

package tray

import (
	"context"

	"github.com/roywong35/timebar/internal/menu"
)

type noopController struct{}

func (noopController) Install(_ []menu.Item) error { return nil }

func (noopController) Stop() {}

func start(_ context.Context, _ Options) (Controller, error) {
	return noopController{}, nil
}
