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
	"bufio"
	"bytes"
	"os"
	"strings"
)

// SourceReader abstracts reading a source file's bytes, so tests can
// substitute an in-memory corpus instead of touching the filesystem.
type SourceReader interface {
	ReadFile(path string) ([]byte, error)
}

// OSSourceReader reads files from the local filesystem.
type OSSourceReader struct{}

func (OSSourceReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// MapSourceReader is an in-memory SourceReader keyed by path, for tests.
type MapSourceReader map[string][]byte

func (m MapSourceReader) ReadFile(path string) ([]byte, error) {
	b, ok := m[path]
	if !ok {
		return nil, &ConfigError{Path: path, Err: os.ErrNotExist}
	}
	return b, nil
}

// Manifest reads one non-empty, whitespace-trimmed source path per line
// from the manifest file at path, silently skipping blank lines.
func Manifest(reader SourceReader, path string) ([]string, error) {
	raw, err := reader.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	var paths []string
	sc := bufio.NewScanner(bytes.NewReader(raw))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		paths = append(paths, line)
	}
	return paths, nil
}

// LoadCorpus reads every listed file through reader, runs Clean over its
// lines, and concatenates the cleaned logical lines of all files, in
// manifest order, into one corpus.
func LoadCorpus(reader SourceReader, paths []string) ([]string, error) {
	var corpus []string
	for _, path := range paths {
		raw, err := reader.ReadFile(path)
		if err != nil {
			return nil, &ConfigError{Path: path, Err: err}
		}
		var lines []string
		sc := bufio.NewScanner(bytes.NewReader(raw))
		for sc.Scan() {
			lines = append(lines, sc.Text())
		}
		corpus = append(corpus, Clean(lines)...)
	}
	return corpus, nil
}
