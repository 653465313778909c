package scan

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// maxLineBytes bounds the scanner buffer. Solr request lines can carry very
// long filter queries.
const maxLineBytes = 10 * 1024 * 1024

// Discover returns every *.log and *.out file directly inside dir, in
// lexicographic path order. It does not recurse. An unreadable dir is an
// error; the caller must not fall back to an empty report.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading log dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".log", ".out":
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// ScanFile reads path line by line and calls fn with each line's
// classification and the text following the level token. The first line may
// carry a UTF-8 byte-order mark; malformed byte sequences are replaced with
// U+FFFD rather than failing the read.
func ScanFile(path string, fn func(Kind, string)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\uFEFF")
			first = false
		}
		line = strings.ToValidUTF8(line, "�")
		kind, rest := Classify(line)
		fn(kind, rest)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}
