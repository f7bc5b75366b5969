package ciutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// clearCI unsets every provider variable for the duration of the test.
func clearCI(t *testing.T) {
	t.Helper()
	for _, p := range providers {
		t.Setenv(p.env, "")
		_ = os.Unsetenv(p.env)
	}
}

func TestProvider(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		want    string
	}{
		{"No CI env vars", map[string]string{}, ""},
		{"Generic CI", map[string]string{EnvCI: "true"}, "generic"},
		{"GitHub Actions", map[string]string{EnvGitHubActions: "true", EnvCI: "true"}, "github-actions"},
		{"GitLab CI", map[string]string{EnvGitLabCI: "true"}, "gitlab-ci"},
		{"Cloud Build", map[string]string{EnvCloudBuild: "/builder/outputs"}, "cloud-build"},
		{"Jenkins", map[string]string{EnvJenkinsURL: "https://jenkins.example.com"}, "jenkins"},
		{"Travis CI", map[string]string{EnvTravisCI: "true"}, "travis"},
		{"Circle CI", map[string]string{EnvCircleCI: "true"}, "circleci"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearCI(t)
			for k, v := range tc.envVars {
				t.Setenv(k, v)
			}

			assert.Equal(t, tc.want, Provider())
			assert.Equal(t, tc.want != "", IsCI())
		})
	}
}
