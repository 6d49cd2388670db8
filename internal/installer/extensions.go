package installer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

// ExtensionsFile is where VS Code keeps a workspace's recommended extensions.
const ExtensionsFile = ".vscode/extensions.json"

// ErrMalformedExtensions is returned when the recommendations file cannot be parsed.
var ErrMalformedExtensions = errors.New("malformed extensions file")

// ExtensionList is the ordered list of recommended extension identifiers.
// Order and duplicates are kept exactly as they appear in the file.
type ExtensionList []string

// LoadRecommendations reads the "recommendations" array from path.
// VS Code tolerates comments and trailing commas in this file, so those are
// standardized away before decoding. A missing field yields an empty list.
// A missing file returns an error matching os.ErrNotExist.
func LoadRecommendations(path string) (ExtensionList, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	std, err := hujson.Standardize(raw)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrMalformedExtensions, path, err)
	}

	var doc struct {
		Recommendations ExtensionList `json:"recommendations"`
	}
	if err := json.Unmarshal(std, &doc); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrMalformedExtensions, path, err)
	}
	if doc.Recommendations == nil {
		return ExtensionList{}, nil
	}
	return doc.Recommendations, nil
}
