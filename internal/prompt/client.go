package prompt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/phrazzld/devai/internal/config"
	"github.com/phrazzld/devai/internal/redact"
)

// SecretAccessor reads the payload of one secret version from a secret store.
// Implementations wrap ErrPermissionDenied or ErrNotFound when the store
// reports those conditions; any other error is treated as unclassified.
type SecretAccessor interface {
	AccessSecretVersion(ctx context.Context, name string) ([]byte, error)
}

// EnvResolver reads required environment variables.
type EnvResolver interface {
	EnsureEnv(name string) (string, error)
}

// Client looks up prompt templates stored as secrets in the project named by PROJECT_ID.
type Client struct {
	accessor SecretAccessor
	env      EnvResolver
	logger   *slog.Logger
}

// NewClient creates a prompt Client.
//
// Parameters:
//   - accessor: the secret store the templates live in
//   - env: resolver used to read PROJECT_ID on every lookup
//   - logger: structured logger for lookup outcomes
//
// Returns:
//   - A Client, or an error when a dependency is missing
func NewClient(accessor SecretAccessor, env EnvResolver, logger *slog.Logger) (*Client, error) {
	if accessor == nil {
		return nil, errors.New("secret accessor cannot be nil")
	}
	if env == nil {
		return nil, errors.New("environment resolver cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Client{
		accessor: accessor,
		env:      env,
		logger:   logger,
	}, nil
}

// SecretVersionName builds the resource name of the latest version of a secret.
func SecretVersionName(projectID, secretID string) string {
	return fmt.Sprintf("projects/%s/secrets/%s/versions/latest", projectID, secretID)
}

// Get retrieves the prompt template stored under secretID.
//
// It makes at most one call to the secret store and never returns an error:
// every failure is logged and mapped to a non-found Status so the caller can
// fall back to a built-in template.
func (c *Client) Get(ctx context.Context, secretID string) Lookup {
	projectID, err := c.env.EnsureEnv(config.ProjectIDEnv)
	if err != nil {
		c.logger.ErrorContext(ctx, "Cannot look up prompt template",
			"secret_id", secretID,
			"error", err)
		return Lookup{Status: StatusUnconfigured, Err: err}
	}

	c.logger.InfoContext(ctx, "Resolved project for prompt lookup",
		"project_id", projectID)

	name := SecretVersionName(projectID, secretID)
	payload, err := c.accessor.AccessSecretVersion(ctx, name)

	if err != nil {
		return c.storeFailure(ctx, secretID, projectID, err)
	}

	if len(payload) == 0 {
		c.logger.InfoContext(ctx, "Secret holds an empty payload",
			"secret_id", secretID,
			"project_id", projectID)
		return Lookup{Status: StatusNotFound, Err: fmt.Errorf("%w: empty payload", ErrNotFound)}
	}

	if !utf8.Valid(payload) {
		c.logger.ErrorContext(ctx, "Secret payload is not valid UTF-8",
			"secret_id", secretID,
			"project_id", projectID)
		return Lookup{Status: StatusFailed, Err: errors.New("secret payload is not valid UTF-8")}
	}

	c.logger.InfoContext(ctx, "Successfully retrieved secret",
		"secret_id", secretID,
		"project_id", projectID)

	return Lookup{Text: string(payload), Status: StatusFound}
}

// storeFailure logs a failed secret access at the severity its class calls
// for and converts it into a degraded Lookup.
func (c *Client) storeFailure(ctx context.Context, secretID, projectID string, err error) Lookup {
	switch {
	case errors.Is(err, ErrPermissionDenied):
		c.logger.WarnContext(ctx, "Insufficient permissions to access secret",
			"secret_id", secretID,
			"project_id", projectID)
		return Lookup{Status: StatusPermissionDenied, Err: err}
	case errors.Is(err, ErrNotFound):
		c.logger.InfoContext(ctx, "Secret ID not found",
			"secret_id", secretID,
			"project_id", projectID)
		return Lookup{Status: StatusNotFound, Err: err}
	default:
		c.logger.ErrorContext(ctx, "Unexpected error while retrieving secret",
			"secret_id", secretID,
			"project_id", projectID,
			"error", redact.Error(err))
		return Lookup{Status: StatusFailed, Err: err}
	}
}
