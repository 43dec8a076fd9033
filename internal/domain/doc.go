// Package domain contains the core model for cube-game records.
//
// The domain is input- and presentation-agnostic: it does not depend on the
// text grammar, the filesystem, or any output format. The parser and infra
// adapters map into/from these types.
package domain
