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
	"bytes"
	"strings"
	"testing"
)

func TestStatusPrinter_InfoQuietByDefault(t *testing.T) {
	var out bytes.Buffer
	s := &StatusPrinter{Out: &out, Err: &out, Verbose: false}
	s.Info("walking module %s", "top")
	if out.Len() != 0 {
		t.Fatalf("Info() wrote %q, want nothing when not verbose", out.String())
	}
}

func TestStatusPrinter_InfoVerbose(t *testing.T) {
	var out bytes.Buffer
	s := &StatusPrinter{Out: &out, Err: &out, Verbose: true}
	s.Info("walking module %s", "top")
	if !strings.Contains(out.String(), "walking module top") {
		t.Fatalf("Info() = %q, want it to contain the message", out.String())
	}
}

func TestStatusPrinter_WarningAlwaysPrints(t *testing.T) {
	var out bytes.Buffer
	s := &StatusPrinter{Out: &out, Err: &out, Verbose: false}
	s.Warning("unrecognised construct on line %d", 12)
	if !strings.Contains(out.String(), "warning:") {
		t.Fatalf("Warning() = %q, want a warning: prefix", out.String())
	}
}
