// Copyright 2016 Google Inc. All Rights Reserved.
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

package schem

import (
	"fmt"
	"io"
	"os"
)

// Status is how the CLI reports progress and errors without aborting the
// run; the traversal engine does not report through it. Warning and Error never
// stop execution themselves; callers decide whether an error is fatal.
type Status interface {
	Info(msg string, args ...interface{})
	Warning(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// StatusPrinter writes to Out/Err, with Info gated behind Verbose so that
// a normal run stays quiet, per the error-handling design's requirement
// that non-fatal under-approximations never clutter standard output
// unless asked for.
type StatusPrinter struct {
	Out     io.Writer
	Err     io.Writer
	Verbose bool
}

// NewStatusPrinter returns a StatusPrinter writing to stdout/stderr.
func NewStatusPrinter(verbose bool) *StatusPrinter {
	return &StatusPrinter{Out: os.Stdout, Err: os.Stderr, Verbose: verbose}
}

func (s *StatusPrinter) Info(msg string, args ...interface{}) {
	if !s.Verbose {
		return
	}
	fmt.Fprintf(s.Out, msg+"\n", args...)
}

func (s *StatusPrinter) Warning(msg string, args ...interface{}) {
	fmt.Fprintf(s.Err, "warning: "+msg+"\n", args...)
}

func (s *StatusPrinter) Error(msg string, args ...interface{}) {
	fmt.Fprintf(s.Err, "error: "+msg+"\n", args...)
}
