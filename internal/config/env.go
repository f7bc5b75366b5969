package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ProjectIDEnv names the environment variable holding the Google Cloud project id.
const ProjectIDEnv = "PROJECT_ID"

// ErrMissingEnvVariable is returned when a required environment variable is not set.
var ErrMissingEnvVariable = errors.New("required environment variable is not set")

// Resolver reads required process environment variables.
// Each lookup consults the live environment, so values are never cached
// between invocations.
type Resolver struct {
	v *viper.Viper
}

// NewResolver creates a Resolver backed by the process environment.
func NewResolver() *Resolver {
	v := viper.New()
	// A variable that is set to the empty string still counts as set.
	v.AllowEmptyEnv(true)
	return &Resolver{v: v}
}

// EnsureEnv returns the value of the named environment variable.
// It fails with ErrMissingEnvVariable when the variable is unset; there is
// no fallback value.
func (r *Resolver) EnsureEnv(name string) (string, error) {
	if err := r.v.BindEnv(name); err != nil {
		return "", fmt.Errorf("failed to bind environment variable %q: %w", name, err)
	}
	if !r.v.IsSet(name) {
		return "", fmt.Errorf("%w: %q", ErrMissingEnvVariable, name)
	}
	return r.v.GetString(name), nil
}
