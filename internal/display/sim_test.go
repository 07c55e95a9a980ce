// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package display

import (
	"errors"

	"github.com/toeirei/cithare/internal/testutil"
)

var errNoTTY = errors.New("not a tty")

func newSimTerminal(width, height int) *testutil.SimTerminal {
	return testutil.NewSimTerminal(width, height)
}
