package manifest

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/evanmartell/shortstage/pkg/errors"
	"github.com/evanmartell/shortstage/pkg/logging"
	"github.com/evanmartell/shortstage/pkg/paths"
	"github.com/evanmartell/shortstage/pkg/types"
)

// Overlay holds extra copy entries loaded from an optional shortstage.yaml
// file in the source directory. Overlay entries are appended after the
// fixed manifest; they can never remove or reorder fixed entries.
type Overlay struct {
	Copy []Entry `yaml:"copy"`
}

// LoadOverlay reads and parses the overlay file at the given path.
// A missing file is not an error and yields a nil overlay.
func LoadOverlay(filesystem types.FS, path string) (*Overlay, error) {
	log := logging.GetLogger("manifest")

	data, err := filesystem.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrOverlayParse, "failed to read overlay file %s", path)
	}

	var o Overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, errors.Wrapf(err, errors.ErrOverlayParse, "failed to parse overlay file %s", path)
	}

	log.Debug().Str("path", path).Int("entries", len(o.Copy)).Msg("Loaded manifest overlay")
	return &o, nil
}

// Apply appends the overlay's copy entries to the manifest, registering any
// new parent directories so they are created before the copies run.
func (m *Manifest) Apply(o *Overlay) error {
	if o == nil {
		return nil
	}

	known := make(map[string]bool, len(m.Dirs))
	for _, d := range m.Dirs {
		known[d] = true
	}

	for _, e := range o.Copy {
		if err := paths.ValidateRelative(e.Source); err != nil {
			return err
		}
		if err := paths.ValidateRelative(e.Dest); err != nil {
			return err
		}

		if dir := filepath.Dir(e.Dest); dir != "." && !known[dir] {
			m.Dirs = append(m.Dirs, dir)
			known[dir] = true
		}
		m.Entries = append(m.Entries, e)
	}

	return nil
}
