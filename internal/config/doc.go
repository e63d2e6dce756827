// Package config loads, normalizes, and validates dramarec configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// DRAMAREC_CATALOG_PATH, including values kept in a local .env file. The Config
// type centralizes the catalog source, result sizing, the similarity ceiling,
// the API bind address and logging in one pass.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical log formats, and clear validation errors.
package config
