package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/robopackage/drupalctl/internal/domain"
)

// Account defaults.
const (
	DefaultAccountRole     = "administrator"
	DefaultAccountEmail    = "admin@example.com"
	DefaultAccountPassword = "admin"
)

// CreateAccountInput contains the parameters for creating a Drupal account.
type CreateAccountInput struct {
	Username string // Account name (required)
	Role     string
	Email    string
	Password string
}

// CreateAccountOutput contains the result of creating an account.
type CreateAccountOutput struct {
	Created bool // False when the account already existed and only the role was added
}

// CreateAccount creates a user if missing and grants it a role.
type CreateAccount struct {
	exec   domain.CommandExecutor
	drush  *Drush
	logger domain.Logger
}

// NewCreateAccount creates a new CreateAccount use case.
func NewCreateAccount(exec domain.CommandExecutor, drush *Drush, logger domain.Logger) *CreateAccount {
	return &CreateAccount{exec: exec, drush: drush, logger: logger}
}

// Execute runs user:information, user:create when needed, then user:role:add.
func (uc *CreateAccount) Execute(ctx context.Context, in CreateAccountInput) (*CreateAccountOutput, error) {
	if in.Username == "" {
		return nil, fmt.Errorf("username: %w", domain.ErrEmptyValue)
	}
	in = withAccountDefaults(in)

	cfg, err := uc.drush.Config()
	if err != nil {
		return nil, err
	}

	exists := uc.userExists(ctx, cfg, in)
	if !exists {
		create := uc.drush.Command(cfg, "user:create").
			WithArguments(in.Username).
			WithOption("mail", in.Email).
			WithOption("password", in.Password)
		if err := uc.run(ctx, cfg, create); err != nil {
			return nil, err
		}
	}

	role := uc.drush.Command(cfg, "user:role:add").
		WithArguments(in.Role, in.Username).
		WithOption("mail", in.Email)
	if err := uc.run(ctx, cfg, role); err != nil {
		return nil, err
	}

	return &CreateAccountOutput{Created: !exists}, nil
}

// userExists reports whether drush knows the user. A failing lookup counts as missing.
func (uc *CreateAccount) userExists(ctx context.Context, cfg *domain.Config, in CreateAccountInput) bool {
	info := uc.drush.Command(cfg, "user:information").
		WithArguments(in.Username).
		WithOption("mail", in.Email).
		WithOption("format", "json")
	out, err := uc.exec.Execute(ctx, uc.drush.Build(cfg, info))
	if err != nil {
		uc.debug(fmt.Sprintf("user %s not found: %v", in.Username, err))
		return false
	}
	var users map[string]any
	if err := json.Unmarshal(out, &users); err != nil {
		uc.debug(fmt.Sprintf("user %s: unreadable user:information output: %v", in.Username, err))
		return false
	}
	return len(users) > 0
}

func (uc *CreateAccount) run(ctx context.Context, cfg *domain.Config, cmd *domain.DrushCommand) error {
	execCmd := uc.drush.Build(cfg, cmd)
	if _, err := uc.exec.Execute(ctx, execCmd); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrCommandFailed, execCmd, err)
	}
	return nil
}

func (uc *CreateAccount) debug(msg string) {
	if uc.logger != nil {
		uc.logger.Debug("account", msg)
	}
}

func withAccountDefaults(in CreateAccountInput) CreateAccountInput {
	if in.Role == "" {
		in.Role = DefaultAccountRole
	}
	if in.Email == "" {
		in.Email = DefaultAccountEmail
	}
	if in.Password == "" {
		in.Password = DefaultAccountPassword
	}
	return in
}
