// Copyright 2016-2020, Pulumi Corporation.
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

// Package contract checks internal invariants of the compiler. A failed contract is a defect in the compiler itself,
// never a user-facing diagnostic, so every failure panics.
package contract

import (
	"fmt"
)

const failMsg = "A failure has occurred"

// Failf unconditionally panics with the given formatted message.
func Failf(msg string, args ...interface{}) {
	panic(fmt.Sprintf("%s: %s", failMsg, fmt.Sprintf(msg, args...)))
}

// Assert checks a condition and panics if it is false.
func Assert(cond bool) {
	if !cond {
		panic(failMsg + ": assertion failed")
	}
}

// Assertf checks a condition and panics with the formatted message if it is false.
func Assertf(cond bool, msg string, args ...interface{}) {
	if !cond {
		Failf("assertion failed: "+msg, args...)
	}
}

// Requiref checks that a required argument holds and panics otherwise.
func Requiref(cond bool, param string, msg string, args ...interface{}) {
	if !cond {
		Failf("requirement for %q failed: %s", param, fmt.Sprintf(msg, args...))
	}
}

// IgnoreError explicitly discards an error that cannot be meaningfully handled.
func IgnoreError(err error) {
	_ = err
}
