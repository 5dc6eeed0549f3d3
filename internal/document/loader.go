// Package document loads contract text files into an analysis run. Rule
// evaluation happens elsewhere; the loader only reads, validates and
// measures the inputs.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/shauryaa19/legallens/internal/contract"
	"github.com/shauryaa19/legallens/internal/textstat"
)

// Diagnostics collects non-fatal loader warnings.
type Diagnostics struct {
	Warnings []string
}

const (
	// MaxFileBytes rejects files too large to be a single contract.
	MaxFileBytes = 10 << 20
	// MinTextRunes rejects fragments too short to carry contract language.
	// The analyze API applies the same floor to inline text.
	MinTextRunes = 20
)

func supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".text", ".md":
		return true
	}
	return false
}

// Load reads contract documents from path, which may be a single file or a
// directory walked recursively. Unsupported files inside a directory are
// skipped silently; naming one directly earns a warning. Document results
// stay empty here; the analyzer fills them in.
func Load(path string) (contract.Analysis, Diagnostics) {
	a := contract.Analysis{
		ID:            uuid.NewString(),
		StartedAt:     time.Now().UTC(),
		Source:        filepath.Clean(path),
		EngineVersion: contract.Version,
	}
	diags := Diagnostics{}

	info, err := os.Stat(path)
	if err != nil {
		diags.Warnings = append(diags.Warnings, fmt.Sprintf("%s: %v", path, err))
		return a, diags
	}

	if !info.IsDir() {
		if !supported(info.Name()) {
			diags.Warnings = append(diags.Warnings, fmt.Sprintf("%s: unsupported file type", path))
			return a, diags
		}
		if d, ok := loadFile(path, info.Name(), &diags); ok {
			a.Documents = append(a.Documents, d)
		}
		return a, diags
	}

	_ = filepath.WalkDir(path, func(p string, de os.DirEntry, err error) error {
		if err != nil || de.IsDir() {
			return nil
		}
		if !supported(de.Name()) {
			return nil
		}
		name := de.Name()
		if rel, rerr := filepath.Rel(path, p); rerr == nil {
			name = rel
		}
		if d, ok := loadFile(p, name, &diags); ok {
			a.Documents = append(a.Documents, d)
		}
		return nil
	})

	if len(a.Documents) == 0 {
		diags.Warnings = append(diags.Warnings, "no contract documents found")
	}
	return a, diags
}

func loadFile(p, name string, diags *Diagnostics) (contract.Document, bool) {
	info, err := os.Stat(p)
	if err != nil {
		diags.Warnings = append(diags.Warnings, fmt.Sprintf("%s: %v", p, err))
		return contract.Document{}, false
	}
	if info.Size() > MaxFileBytes {
		diags.Warnings = append(diags.Warnings, fmt.Sprintf("%s: file too large (%d bytes)", p, info.Size()))
		return contract.Document{}, false
	}
	raw, err := os.ReadFile(p)
	if err != nil {
		diags.Warnings = append(diags.Warnings, fmt.Sprintf("%s: %v", p, err))
		return contract.Document{}, false
	}
	text := string(raw)
	if !utf8.ValidString(text) {
		diags.Warnings = append(diags.Warnings, fmt.Sprintf("%s: not valid UTF-8 text", p))
		return contract.Document{}, false
	}
	if strings.TrimSpace(text) == "" {
		diags.Warnings = append(diags.Warnings, fmt.Sprintf("%s: empty file", p))
		return contract.Document{}, false
	}
	if utf8.RuneCountInString(strings.TrimSpace(text)) < MinTextRunes {
		diags.Warnings = append(diags.Warnings, fmt.Sprintf("%s: too short to analyze", p))
		return contract.Document{}, false
	}
	return contract.Document{
		Name:  name,
		Path:  p,
		Stats: textstat.Measure(text),
		Text:  text,
	}, true
}
