// Package config provides configuration loading, merging, and validation
// for the go-user-keeper server.
//
// Configuration is assembled from several sources. Sources are merged with
// mergo without overriding, so for every field the first source that sets a
// non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path from CONFIG or -c/-config)
//  4. Built-in defaults
//
// The merged result is validated before it is returned by
// [GetStructuredConfig].
package config
