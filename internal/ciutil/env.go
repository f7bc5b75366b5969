package ciutil

import "os"

// CI provider detection variables.
const (
	EnvCI            = "CI"
	EnvGitHubActions = "GITHUB_ACTIONS"
	EnvGitLabCI      = "GITLAB_CI"
	EnvJenkinsURL    = "JENKINS_URL"
	EnvCloudBuild    = "BUILDER_OUTPUT"
	EnvTravisCI      = "TRAVIS"
	EnvCircleCI      = "CIRCLECI"
)

// providers is checked in order; the generic CI variable comes last so a
// specific provider wins when both are set.
var providers = []struct {
	env  string
	name string
}{
	{EnvGitHubActions, "github-actions"},
	{EnvGitLabCI, "gitlab-ci"},
	{EnvCloudBuild, "cloud-build"},
	{EnvJenkinsURL, "jenkins"},
	{EnvTravisCI, "travis"},
	{EnvCircleCI, "circleci"},
	{EnvCI, "generic"},
}

// Provider returns the name of the CI system the process runs in, or "" when
// it runs outside CI.
func Provider() string {
	for _, p := range providers {
		if os.Getenv(p.env) != "" {
			return p.name
		}
	}
	return ""
}

// IsCI returns true if the current environment is a CI environment.
func IsCI() bool {
	return Provider() != ""
}
