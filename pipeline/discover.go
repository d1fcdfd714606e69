package pipeline

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/teranos/expandgen/errors"
	"github.com/teranos/expandgen/schema"
)

// Discover expands args into schema files. Directories contribute their
// *.expand files; files are taken as given. No args means the working
// directory.
func Discover(args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}

	seen := make(map[string]bool)
	var paths []string
	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot read %s", arg)
		}
		if !info.IsDir() {
			add(arg)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(arg, "*"+schema.Extension))
		if err != nil {
			return nil, errors.Wrapf(err, "listing %s", arg)
		}
		sort.Strings(matches)
		for _, m := range matches {
			add(m)
		}
	}

	if len(paths) == 0 {
		return nil, errors.WithHintf(errors.Newf("no %s files found", schema.Extension),
			"pass schema files or a directory containing them")
	}
	return paths, nil
}
