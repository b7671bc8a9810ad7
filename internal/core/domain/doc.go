// Package domain defines the core business entities for undiscovered.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SearchMatch: A lightweight hit from a store search
//   - TitleRecord: Full metadata and review summary for one title
//   - FilterCriteria: The user's price, review and platform limits
//   - Collection: The titles gathered by one discovery run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
