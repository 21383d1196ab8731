// Package config loads and merges the samvaad client configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are combined through a builder: each source produces a partial
// [ClientConfig], and the partials are merged with mergo so that earlier
// sources win for fields they set. After merging, defaults are applied and
// the result is validated.
package config
