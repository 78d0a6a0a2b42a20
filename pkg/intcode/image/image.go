// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package image

import (
	"bufio"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"
	"strconv"
	"strings"
)

// ParseError reports a malformed entry in a program image.
type ParseError struct {
	// Index of the offending entry
	Index uint
	// Text of the offending entry
	Text string
}

func (p *ParseError) Error() string {
	return fmt.Sprintf("invalid word \"%s\" at index %d", p.Text, p.Index)
}

// Parse a program image given as a comma-separated list of signed decimal
// integers.  Surrounding whitespace (including trailing newlines) is ignored,
// as are empty entries at the end of the list.
func Parse(text string) ([]int64, error) {
	var (
		entries = strings.Split(strings.TrimSpace(text), ",")
		words   = make([]int64, 0, len(entries))
	)
	// Drop trailing empty entries
	for len(entries) > 0 && strings.TrimSpace(entries[len(entries)-1]) == "" {
		entries = entries[:len(entries)-1]
	}
	//
	for i, entry := range entries {
		entry = strings.TrimSpace(entry)
		//
		word, err := strconv.ParseInt(entry, 10, 64)
		if err != nil {
			return nil, &ParseError{uint(i), entry}
		}
		//
		words = append(words, word)
	}
	//
	return words, nil
}

// Format a program image as a comma-separated list, such that parsing the
// result gives back the original words.
func Format(words []int64) string {
	var builder strings.Builder
	//
	for i, w := range words {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		builder.WriteString(strconv.FormatInt(w, 10))
	}
	//
	return builder.String()
}

// ReadFile reads and parses a program image from a given file.  Files ending in
// ".bz2" or ".gz" are decompressed first.
func ReadFile(filename string) ([]int64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	//
	defer file.Close()
	// apply compression
	var reader io.Reader
	// check extension
	switch path.Ext(filename) {
	case ".bz2":
		reader = bzip2.NewReader(file)
	case ".gz":
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, err
		}
		//
		defer gz.Close()
		//
		reader = gz
	default:
		reader = file
	}
	//
	bytes, err := io.ReadAll(bufio.NewReaderSize(reader, 1024*128))
	if err != nil {
		return nil, err
	}
	//
	words, err := Parse(string(bytes))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	return words, nil
}
