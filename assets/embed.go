package assets

import (
	"bufio"
	"embed"
	"errors"
	"io/fs"
	"strings"
)

//go:embed help/*.txt
var FS embed.FS

// readLines returns the lines of an embedded file without "#" comment lines.
// Blank lines are kept; they separate help sections.
func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimRight(sc.Text(), " \t")
		if strings.HasPrefix(strings.TrimSpace(s), "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// Help returns the help text for lang ("en", "hu", "hu-HU", ...), falling
// back to English when no file exists for the base language.
func Help(lang string) ([]string, error) {
	base := strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(base, "-_"); i >= 0 {
		base = base[:i]
	}
	if base != "" {
		lines, err := readLines("help/" + base + ".txt")
		if err == nil {
			return lines, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return readLines("help/en.txt")
}
