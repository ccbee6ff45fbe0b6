// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package atomicext provides small helpers that sit
// alongside sync/atomic for lock-free hot loops.
package atomicext

import "runtime"

// Pause improves the performance of spin-wait loops. When executing
// a "spin-wait loop," processors suffer a performance penalty on
// exit because they suspect a memory order violation. Pause hints
// the scheduler that the calling goroutine is spinning on a condition
// another goroutine is expected to clear soon, yielding the P instead
// of burning a full scheduling quantum on each poll.
//
//go:noinline
func Pause() {
	runtime.Gosched()
}
