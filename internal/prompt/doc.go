// Package prompt resolves prompt templates from a remote secret store.
//
// Template retrieval is an optional enhancement: a lookup never fails the
// caller. Every outcome, including a missing PROJECT_ID, permission errors and
// unexpected store failures, is reported through the Status of a Lookup and a
// structured log record, and the caller falls back to its built-in default.
package prompt
