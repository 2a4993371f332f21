// Copyright 2011 Google Inc. All Rights Reserved.
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
	"reflect"
	"testing"
)

func TestClean_LineComment(t *testing.T) {
	got := Clean([]string{"input a; // primary input"})
	want := []string{"input a;"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Clean() = %v; want %v", got, want)
	}
}

func TestClean_Directive(t *testing.T) {
	got := Clean([]string{"`define WIDTH 8", "wire w;"})
	want := []string{"wire w;"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Clean() = %v; want %v", got, want)
	}
}

func TestClean_BlockCommentAcrossLines(t *testing.T) {
	got := Clean([]string{
		"wire a; /* start",
		"  still in comment",
		"end */ wire b;",
	})
	want := []string{"wire a;", "wire b;"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Clean() = %v; want %v", got, want)
	}
}

func TestClean_MultipleStatementsOnOneLine(t *testing.T) {
	got := Clean([]string{"wire a; wire b;"})
	want := []string{"wire a;", "wire b;"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Clean() = %v; want %v", got, want)
	}
}

func TestClean_TrailingFragmentWithoutTerminator(t *testing.T) {
	got := Clean([]string{"assign y = a &"})
	want := []string{"assign y = a &"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Clean() = %v; want %v", got, want)
	}
}

func TestClean_DropsEmptyLines(t *testing.T) {
	got := Clean([]string{"", "   ", "// comment only"})
	if len(got) != 0 {
		t.Fatalf("Clean() = %v; want empty", got)
	}
}
