// Copyright 2025 go-half Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// hostConversion names the host's hardware binary16 conversion feature and
// whether it is present. It is reported for context only; the checks always
// exercise the software codec.
func hostConversion() (string, bool) {
	switch runtime.GOARCH {
	case "amd64", "386":
		// x/sys/cpu has no F16C flag; every FMA-capable CPU also has F16C.
		return "f16c", cpu.X86.HasAVX && cpu.X86.HasFMA
	case "arm64":
		return "fphp", cpu.ARM64.HasFPHP
	default:
		return "none", false
	}
}
