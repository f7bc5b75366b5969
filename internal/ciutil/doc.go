// Package ciutil detects whether devai runs inside a CI pipeline.
//
// Pipelines collect stderr as build logs, so the configuration layer uses
// this to switch the default log format to JSON there.
package ciutil
