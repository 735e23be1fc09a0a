package heatchart

import (
	"io/fs"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
)

// Find returns every file under root whose base name matches the shell
// pattern, e.g. "*V.csv". Results are sorted. Entries below root that cannot
// be read are logged and skipped; an unreadable root is an error.
func Find(root, pattern string, logger *zap.Logger) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	f := &finder{root: root, pattern: pattern, logger: logger}
	if err := filepath.WalkDir(root, f.visit); err != nil {
		return nil, err
	}

	sort.Strings(f.result)
	return f.result, nil
}

type finder struct {
	root    string
	pattern string
	logger  *zap.Logger
	result  []string
}

func (f *finder) visit(path string, d fs.DirEntry, err error) error {
	if err != nil {
		if path == f.root {
			return err
		}
		f.logger.Warn("Skipping unreadable path", zap.String("path", path), zap.Error(err))
		if d != nil && d.IsDir() {
			return fs.SkipDir
		}
		return nil
	}
	if d.IsDir() {
		return nil
	}
	if ok, _ := filepath.Match(f.pattern, d.Name()); ok {
		f.result = append(f.result, path)
	}
	return nil
}
