package usecase

import (
	"context"
	"fmt"

	"github.com/robopackage/drupalctl/internal/domain"
)

// RunDrushInput contains the arguments passed through to drush.
type RunDrushInput struct {
	Args []string
}

// RunDrushOutput contains the executed command.
type RunDrushOutput struct {
	Command string
}

// RunDrush runs drush in the project with the terminal attached.
type RunDrush struct {
	exec  domain.CommandExecutor
	drush *Drush
}

// NewRunDrush creates a new RunDrush use case.
func NewRunDrush(exec domain.CommandExecutor, drush *Drush) *RunDrush {
	return &RunDrush{exec: exec, drush: drush}
}

// Execute runs `drush <args...>`.
func (uc *RunDrush) Execute(ctx context.Context, in RunDrushInput) (*RunDrushOutput, error) {
	cfg, err := uc.drush.Config()
	if err != nil {
		return nil, err
	}
	cmd := uc.drush.Build(cfg, uc.drush.Command(cfg, "").WithArguments(in.Args...))
	if err := uc.exec.ExecuteInteractive(ctx, cmd); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCommandFailed, cmd, err)
	}
	return &RunDrushOutput{Command: cmd.String()}, nil
}
