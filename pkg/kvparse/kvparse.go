// Package kvparse parses line-oriented "key<sep>value" text such as sysfs
// uevent files and system_profiler output.
package kvparse

import (
	"bufio"
	"io"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Map holds parsed values keyed by their raw key. Later lines override
// earlier ones.
type Map map[string]string

// Parse reads r line by line and splits every trimmed line on the first
// occurrence of sep. Lines without sep are ignored.
func Parse(r io.Reader, sep string) (Map, error) {
	m := Map{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		key, value, found := strings.Cut(line, sep)
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		m[key] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to scan key/value lines")
	}
	return m, nil
}

// ParseString is Parse over a string.
func ParseString(s, sep string) (Map, error) {
	return Parse(strings.NewReader(s), sep)
}

// Lookup returns the value of the first key present in m.
func (m Map) Lookup(keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v, true
		}
	}
	return "", false
}

// Get returns the value of key, or def if the key is absent or empty.
func (m Map) Get(key, def string) string {
	if v, ok := m[key]; ok && v != "" {
		return v
	}
	return def
}
