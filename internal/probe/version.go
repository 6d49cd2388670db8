package probe

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// verRe pulls the first dotted version number out of free-form --version output,
// e.g. "git version 2.43.0", "Docker version 27.1.1, build 6312585" or
// "go version go1.22.1 linux/amd64".
var verRe = regexp.MustCompile(`(\d+\.\d+(?:\.\d+)?(?:[-+][0-9A-Za-z.-]+)?)`)

// ParseVersion extracts a semantic version from a version line.
func ParseVersion(line string) (*semver.Version, error) {
	m := verRe.FindStringSubmatch(line)
	if len(m) < 2 {
		return nil, fmt.Errorf("no version number in %q", line)
	}
	return semver.NewVersion(m[1])
}

// CheckMinimum records min on r and flags r as outdated when its version is
// below min. Tools that are missing, or whose version does not parse, are
// left unflagged.
func CheckMinimum(r ToolCheckResult, min string) (ToolCheckResult, error) {
	r.MinVersion = min
	if min == "" || !r.Installed || r.Version == UnknownVersion {
		return r, nil
	}
	want, err := semver.NewVersion(min)
	if err != nil {
		return r, fmt.Errorf("invalid min_version %q for %s: %w", min, r.Name, err)
	}
	got, err := ParseVersion(r.Version)
	if err != nil {
		return r, nil
	}
	r.Outdated = got.LessThan(want)
	return r, nil
}
