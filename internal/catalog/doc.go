// Package catalog loads the drama catalog and normalizes it into Records.
//
// Loading tolerates column-name drift (spacing, parentheses), coerces the
// personal rating to a bounded number, fills missing descriptive fields with
// the "Not specified" sentinel, and decorates genre tags with display
// symbols. Each Record also carries the composite feature text that the
// similarity index is built from.
//
// A normalized catalog can be imported into a SQLite snapshot (Store) so that
// later runs skip CSV parsing; Open picks the configured source.
package catalog
