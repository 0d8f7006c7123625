// Package descriptor reads display metadata from a Makefile.PL.
package descriptor

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// namePattern matches a trimmed `NAME => "Foo::Bar"` line. The key may be quoted
// and the value may use single or double quotes.
var namePattern = regexp.MustCompile(`^['"]?NAME['"]?\s*=>\s*(?:"([^"]*)"|'([^']*)')`)

// PackageName returns the first NAME declared in the descriptor text, or "".
// It is a line scan, not a Perl parser.
func PackageName(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if name, ok := matchName(scanner.Text()); ok {
			return name, nil
		}
	}
	return "", scanner.Err()
}

func matchName(line string) (string, bool) {
	m := namePattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", false
	}
	if m[1] != "" {
		return m[1], true
	}
	return m[2], true
}
