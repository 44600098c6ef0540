package paths

import (
	"path/filepath"

	"github.com/matzehuels/matte/pkg/errors"
)

// ToAbsolute resolves p against the directory of the config file cfg.
// With no config file p is returned unchanged.
func ToAbsolute(p, cfg string) string {
	if cfg == "" {
		return p
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	dir, err := filepath.Abs(filepath.Dir(cfg))
	if err != nil {
		return filepath.Join(filepath.Dir(cfg), p)
	}
	return filepath.Join(dir, p)
}

// ToRelative expresses p relative to the directory of the config file cfg
// when both are on the same device, and returns p's absolute form otherwise.
// With no config file p is returned unchanged.
func ToRelative(p, cfg string) (string, error) {
	if cfg == "" {
		return p, nil
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %s", p)
	}
	dir, err := filepath.Abs(filepath.Dir(cfg))
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %s", cfg)
	}

	same, err := sameDevice(dir, abs)
	if err != nil {
		return "", err
	}
	if !same {
		return abs, nil
	}
	rel, err := filepath.Rel(dir, abs)
	if err != nil {
		return abs, nil
	}
	return rel, nil
}

// Rebase re-anchors a stored path from oldCfg to newCfg.
func Rebase(p, oldCfg, newCfg string) (string, error) {
	return ToRelative(ToAbsolute(p, oldCfg), newCfg)
}

// RewriteAll rebases every path in place. It stops at the first failure,
// leaving earlier paths rewritten.
func RewriteAll(ps []*string, oldCfg, newCfg string) error {
	for _, p := range ps {
		rebased, err := Rebase(*p, oldCfg, newCfg)
		if err != nil {
			return err
		}
		*p = rebased
	}
	return nil
}

func sameDevice(a, b string) (bool, error) {
	va, err := volumeOf(a)
	if err != nil {
		return false, errors.FromOS(err, "stat %s", a)
	}
	vb, err := volumeOf(b)
	if err != nil {
		return false, errors.FromOS(err, "stat %s", b)
	}
	return va == vb, nil
}
