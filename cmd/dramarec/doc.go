// Package main hosts the dramarec CLI entrypoint and command graph.
//
// The Cobra-based command tree resolves configuration once, loads the drama
// catalog from CSV or the SQLite snapshot, builds the recommendation engine,
// and hands it to subcommands: one-shot recommendations, top-rated browsing,
// the HTTP API, catalog import, and configuration scaffolding.
//
// Keep this package lean: add new functionality in the internal packages
// first, then surface it through dedicated commands or flags here.
package main
