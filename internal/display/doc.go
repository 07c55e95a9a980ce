// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package display draws secret records as a bordered grid on the terminal.
//
// The grid has one row per record below a header row. Every row is a
// bordered region three lines tall placed on a two-line band, so adjacent
// rows share a border line. Columns are sized by ColumnWidths and fields
// are written at fixed offsets separated by a delimiter.
//
// A Session owns the terminal for one show cycle:
//
//	Uninitialized -> Initialized -> Rendered -> AwaitingDismiss -> TornDown
//
// Once Open succeeds the terminal is always restored by Close, which runs
// exactly once.
package display
