// Copyright 2025 The ragmill Authors
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


package extract

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Extractor produces the ordered page texts of a source file.
// Implementations must be safe for concurrent use: the pipeline may
// extract multiple documents at once.
type Extractor interface {
	// ExtractPages extracts text from each page of the file at path,
	// in page order. Pages without extractable text are skipped.
	// Returns an error if the file itself cannot be read or parsed;
	// callers treat that as a per-document failure, not a fatal one.
	ExtractPages(ctx context.Context, path string) ([]string, error)
}

// ListPDFs returns the PDF file names in dir, sorted for deterministic
// processing order. Returns an error if the directory cannot be read.
func ListPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
