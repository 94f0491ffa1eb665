// Package modload discovers source directories on disk, groups their
// `.life` files into modules, and merges each group's parsed files into
// one ast.Module with duplicate-name detection.
package modload

import "strings"

// Descriptor names one module: the directory it was discovered in, the
// Camel_Snake_Case path components derived from its position under the
// source root, and the sorted list of `.life` files it contains.
type Descriptor struct {
	PathComponents []string
	Directory      string
	FilePaths      []string
}

// DottedPath joins PathComponents with "." the way SemanticContext keys
// its module map. A descriptor whose directory sits directly under the
// source root has a single component and no dot.
func (d Descriptor) DottedPath() string {
	return strings.Join(d.PathComponents, ".")
}
