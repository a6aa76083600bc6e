// SPDX-License-Identifier: MIT

package meshgen

import "errors"

var (
	// ErrTooFewCells indicates a size parameter below its minimum (rows, cols
	// or fan sides).
	ErrTooFewCells = errors.New("meshgen: parameter too small")

	// ErrBadRadius indicates a fan radius that is not positive and finite.
	ErrBadRadius = errors.New("meshgen: radius must be positive and finite")

	// ErrNilConstructor indicates a nil Constructor passed to Build.
	ErrNilConstructor = errors.New("meshgen: nil constructor")
)
