// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to the settings the document commands need, and the Resolver used
// to read required process environment variables such as PROJECT_ID.
package config
