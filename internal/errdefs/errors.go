// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blake Mills

// Package errdefs defines the error kinds the generator distinguishes.
//
// Callers wrap these sentinels with fmt.Errorf("%w: ...") to attach the
// repository and namespace context; tests and command code match them with
// errors.Is.
package errdefs

import "errors"

var (
	// ErrInvalidRepository indicates a GIR document could not be parsed.
	// This is fatal for the whole run: none of the document's declarations
	// can be trusted.
	ErrInvalidRepository = errors.New("invalid GIR repository")

	// ErrRepositoryNotFound indicates a repository file could not be located
	// in any of the configured input directories.
	ErrRepositoryNotFound = errors.New("repository not found")

	// ErrCyclicDependency indicates the include graph contains a cycle.
	ErrCyclicDependency = errors.New("cyclic repository dependency")

	// ErrNotSupported indicates a construct with no sound translation, e.g.
	// variadic parameters. It is handled locally by emitting a compile-time
	// error placeholder instead of aborting the run.
	ErrNotSupported = errors.New("not supported")
)

// IsInvalidRepository reports whether err is or wraps ErrInvalidRepository.
func IsInvalidRepository(err error) bool {
	return errors.Is(err, ErrInvalidRepository)
}

// IsNotFound reports whether err is or wraps ErrRepositoryNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRepositoryNotFound)
}
