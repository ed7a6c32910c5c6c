// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Object property membership is compared as a set; enum values and union
// variants are compared in order.
var equalOpts = cmp.Options{
	cmpopts.EquateEmpty(),
	cmpopts.SortSlices(func(a, b Property) bool { return a.Name < b.Name }),
}

// Equal reports whether two nodes are structurally equal.
func Equal(a, b Node) bool {
	return cmp.Equal(a, b, equalOpts)
}

// Diff returns a human-readable structural diff between two nodes.
func Diff(a, b Node) string {
	return cmp.Diff(a, b, equalOpts)
}
