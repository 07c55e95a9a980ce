// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the message catalogs against the code. It collects
// every i18n.T("id") call outside tools/ and reports ids missing from a
// locale as errors, and catalog ids nothing uses as warnings.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const primaryLocale = "en.yaml"

var callRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)

// Report is the outcome of one lint run.
type Report struct {
	Used     int
	Orphaned []string
	// Missing maps a locale file name to the ids it lacks.
	Missing map[string][]string
}

// Failed reports whether any locale lacks a used id.
func (r Report) Failed() bool {
	for _, ids := range r.Missing {
		if len(ids) > 0 {
			return true
		}
	}
	return false
}

func main() {
	root := flag.String("root", ".", "module root to scan")
	locales := flag.String("locales", "internal/i18n/locales", "directory holding the catalogs")
	flag.Parse()

	report, err := lint(*root, *locales)
	if err != nil {
		fmt.Fprintf(os.Stderr, "i18n-linter: %v\n", err)
		os.Exit(1)
	}
	printReport(os.Stdout, report)
	if report.Failed() {
		os.Exit(1)
	}
}

func lint(root, localesDir string) (Report, error) {
	used, err := findUsedKeys(root)
	if err != nil {
		return Report{}, fmt.Errorf("scan sources: %w", err)
	}
	primary, err := loadKeysFromLocale(filepath.Join(localesDir, primaryLocale))
	if err != nil {
		return Report{}, fmt.Errorf("load %s: %w", primaryLocale, err)
	}
	files, err := filepath.Glob(filepath.Join(localesDir, "*.yaml"))
	if err != nil {
		return Report{}, err
	}

	report := Report{Used: len(used), Missing: map[string][]string{}}
	for id := range primary {
		if _, ok := used[id]; !ok {
			report.Orphaned = append(report.Orphaned, id)
		}
	}
	sort.Strings(report.Orphaned)

	for _, file := range files {
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return Report{}, fmt.Errorf("load %s: %w", file, err)
		}
		var missing []string
		for id := range used {
			if _, ok := keys[id]; !ok {
				missing = append(missing, id)
			}
		}
		sort.Strings(missing)
		report.Missing[filepath.Base(file)] = missing
	}
	return report, nil
}

func printReport(w io.Writer, r Report) {
	fmt.Fprintf(w, "%d message ids used in code\n", r.Used)
	locales := make([]string, 0, len(r.Missing))
	for name := range r.Missing {
		locales = append(locales, name)
	}
	sort.Strings(locales)
	for _, name := range locales {
		if len(r.Missing[name]) == 0 {
			fmt.Fprintf(w, "%s: complete\n", name)
			continue
		}
		for _, id := range r.Missing[name] {
			fmt.Fprintf(w, "%s: missing %s\n", name, id)
		}
	}
	for _, id := range r.Orphaned {
		fmt.Fprintf(w, "warning: %s is never used\n", id)
	}
}

// findUsedKeys scans non-test .go files for i18n.T("id") calls.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			switch name := info.Name(); {
			case path != root && strings.HasPrefix(name, "_"), name == "tools", name == ".git":
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range callRe.FindAllStringSubmatch(string(content), -1) {
			keys[m[1]] = struct{}{}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale reads a catalog and returns its ids. Nested maps are
// flattened with dots so both layouts are accepted.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	keys := make(map[string]struct{})
	flatten("", data, keys)
	return keys, nil
}

func flatten(prefix string, node any, keys map[string]struct{}) {
	m, ok := node.(map[string]any)
	if !ok {
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
		return
	}
	for k, v := range m {
		if prefix != "" {
			k = prefix + "." + k
		}
		flatten(k, v, keys)
	}
}
