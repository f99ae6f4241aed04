package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/robopackage/drupalctl/internal/domain"
)

// Login defaults.
const (
	DefaultLookupType  = "id"
	DefaultLookupValue = "1"
)

// LoginInput contains the parameters for generating a one-time login link.
type LoginInput struct {
	LookupType  string // id, name or mail
	LookupValue string
	NoBrowser   bool // Print the link instead of opening it
}

// LoginOutput contains the login link.
type LoginOutput struct {
	URL    string
	Opened bool
}

// Login generates a one-time login link with drush user:login.
type Login struct {
	exec    domain.CommandExecutor
	browser domain.BrowserOpener
	drush   *Drush
}

// NewLogin creates a new Login use case.
func NewLogin(exec domain.CommandExecutor, browser domain.BrowserOpener, drush *Drush) *Login {
	return &Login{exec: exec, browser: browser, drush: drush}
}

// Execute runs `drush user:login --<lookup>=<value>` and opens the link unless NoBrowser is set.
func (uc *Login) Execute(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	if in.LookupType == "" {
		in.LookupType = DefaultLookupType
	}
	if in.LookupValue == "" {
		in.LookupValue = DefaultLookupValue
	}
	option, ok := domain.UserLookupOption(in.LookupType)
	if !ok {
		return nil, fmt.Errorf("%w: the %s user lookup type is invalid", domain.ErrInvalidLookupType, in.LookupType)
	}

	cfg, err := uc.drush.Config()
	if err != nil {
		return nil, err
	}
	cmd := uc.drush.Build(cfg, uc.drush.Command(cfg, "user:login").WithOption(option, in.LookupValue))
	out, err := uc.exec.Execute(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCommandFailed, cmd, err)
	}

	link := strings.TrimSpace(string(out))
	if in.NoBrowser || uc.browser == nil {
		return &LoginOutput{URL: link}, nil
	}
	if err := uc.browser.Open(ctx, link); err != nil {
		return &LoginOutput{URL: link}, err
	}
	return &LoginOutput{URL: link, Opened: true}, nil
}
