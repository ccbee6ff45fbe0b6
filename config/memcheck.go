// Copyright 2023 Sneller, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package config

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
)

// availableMemory reads /proc/meminfo's MemAvailable, in bytes. On
// non-Linux systems, or if the file can't be parsed, it returns 0
// and CheckAllocation becomes a no-op — this module only implements
// the pre-flight check where the platform actually exposes one.
func availableMemory() int64 {
	if runtime.GOOS != "linux" {
		return 0
	}
	f, err := os.Open("/proc/meminfo")
	if err != nil {
		return 0
	}
	defer f.Close()

	s := bufio.NewScanner(f)
	for s.Scan() {
		var kb int64
		if n, _ := fmt.Sscanf(s.Text(), "MemAvailable: %d kB", &kb); n == 1 {
			return kb * 1024
		}
	}
	return 0
}

// CheckAllocation estimates whether a requested allocation of
// wantBytes is likely to succeed, failing fast with a diagnostic
// instead of letting the Go runtime OOM-kill the process partway
// through a synthetic generation run. It is a best-effort guard: a
// zero result from availableMemory (non-Linux, or an unreadable
// /proc/meminfo) disables the check entirely.
func CheckAllocation(wantBytes int64) error {
	avail := availableMemory()
	if avail == 0 {
		return nil
	}
	if wantBytes > avail {
		return fmt.Errorf("config: requested allocation of %d bytes exceeds %d bytes available", wantBytes, avail)
	}
	return nil
}
