package domain

import "errors"

// Domain errors.
var (
	ErrIssueFetch        = errors.New("unable to fetch the Drupal issue")
	ErrIssueNotFound     = errors.New("drupal issue not found")
	ErrNoPatches         = errors.New("drupal issue does not contain any patches")
	ErrDecode            = errors.New("malformed JSON document")
	ErrPatchWrite        = errors.New("failed to write composer patches")
	ErrInvalidIssueID    = errors.New("the Drupal issue number is required")
	ErrNoDrupalPackages  = errors.New("no Drupal packages declared in composer.json")
	ErrManifestNotFound  = errors.New("composer.json not found")
	ErrProjectNotFound   = errors.New("no Drupal project found (composer.json missing in this directory or its parents)")
	ErrSettingsNotFound  = errors.New("unable to locate the Drupal settings.local.php file")
	ErrInvalidLookupType = errors.New("invalid user lookup type")
	ErrCommandFailed     = errors.New("error was thrown when running command")
	ErrConfigExists      = errors.New("config file already exists")
	ErrEmptyValue        = errors.New("a value is required")
	ErrNoChoices         = errors.New("no choices available")
	ErrAborted           = errors.New("aborted by user")
	ErrUnknownPackage    = errors.New("package is not a Drupal package declared in composer.json")
	ErrUnknownPatch      = errors.New("patch is not listed on the Drupal issue")
)
