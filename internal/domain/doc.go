// Package domain contains the core model for numutil.
//
// The domain does not depend on YAML parsing, cobra, or the filesystem.
// Infra/adapters map into/from these types.
package domain
