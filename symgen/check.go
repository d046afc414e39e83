package symgen

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"

	"github.com/teranos/webns/errors"
)

// CheckResult reports how checked-in files compare to a fresh generation.
type CheckResult struct {
	UpToDate bool `json:"up_to_date"`
	// Stale lists files whose content differs.
	Stale []string `json:"stale"`
	// Missing lists files that do not exist.
	Missing []string `json:"missing"`
}

// Err returns an ErrStale error naming the offending files, or nil.
func (c *CheckResult) Err() error {
	if c.UpToDate {
		return nil
	}
	err := errors.Wrapf(errors.ErrStale, "%d stale, %d missing", len(c.Stale), len(c.Missing))
	for _, p := range c.Stale {
		err = errors.WithDetailf(err, "stale: %s", p)
	}
	for _, p := range c.Missing {
		err = errors.WithDetailf(err, "missing: %s", p)
	}
	return errors.WithHint(err, "run `go generate ./vocab` or `webnsgen`")
}

// Check generates in memory and compares the result with the files under
// root without writing anything.
func (g *Generator) Check(root string) (*CheckResult, error) {
	result, err := g.Generate()
	if err != nil {
		return nil, err
	}
	return Compare(result, root)
}

// Compare compares result with the files under root.
func Compare(result *Result, root string) (*CheckResult, error) {
	check := &CheckResult{}
	for _, f := range result.Files {
		existing, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(f.Path)))
		switch {
		case os.IsNotExist(err):
			check.Missing = append(check.Missing, f.Path)
		case err != nil:
			return nil, errors.Wrapf(err, "failed to read %s", f.Path)
		case !bytes.Equal(existing, f.Content):
			check.Stale = append(check.Stale, f.Path)
		}
	}
	check.UpToDate = len(check.Stale) == 0 && len(check.Missing) == 0
	return check, nil
}

// FormatDigest renders a vocabulary digest as hex.
func FormatDigest(d uint64) string {
	return strconv.FormatUint(d, 16)
}
