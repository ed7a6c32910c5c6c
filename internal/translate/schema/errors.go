// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrNameConflict indicates two definitions share a name but differ structurally.
	ErrNameConflict = errors.New("definition name conflict")

	// ErrUnresolvedReference indicates a reference to a name missing from the definitions table.
	ErrUnresolvedReference = errors.New("unresolved reference")
)

// NameConflictError reports two definitions registered under the same name with different bodies.
type NameConflictError struct {
	Name   string
	First  Definition
	Second Definition
}

func (e *NameConflictError) Error() string {
	if e.First.Naming.Name() != e.Second.Naming.Name() {
		return fmt.Sprintf("%v: %q is declared with naming policies %s and %s",
			ErrNameConflict, e.Name, e.First.Naming.Name(), e.Second.Naming.Name())
	}
	return fmt.Sprintf("%v: %q is declared twice with different bodies (-first +second):\n%s",
		ErrNameConflict, e.Name, Diff(e.First.Body, e.Second.Body))
}

func (e *NameConflictError) Unwrap() error { return ErrNameConflict }

// UnresolvedReferenceError reports a reference whose target is not a known definition.
type UnresolvedReferenceError struct {
	Name string // the missing definition
	From string // the definition containing the reference
}

func (e *UnresolvedReferenceError) Error() string {
	if e.From == "" {
		return fmt.Sprintf("%v: %q", ErrUnresolvedReference, e.Name)
	}
	return fmt.Sprintf("%v: %q (referenced from %q)", ErrUnresolvedReference, e.Name, e.From)
}

func (e *UnresolvedReferenceError) Unwrap() error { return ErrUnresolvedReference }
