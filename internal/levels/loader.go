package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/brickout/internal/rules"
)

//go:embed packs/*.yaml
var packFS embed.FS

// yamlLevel is the on-disk YAML structure for a level file.
type yamlLevel struct {
	Number int     `yaml:"number"`
	Name   string  `yaml:"name"`
	Matrix [][]int `yaml:"matrix"`
}

// Parse parses a single YAML level and validates its brick types.
func Parse(data []byte) (*Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return nil, fmt.Errorf("levels: yaml unmarshal: %w", err)
	}
	if len(yl.Matrix) == 0 {
		return nil, fmt.Errorf("levels: level %d %q has an empty matrix", yl.Number, yl.Name)
	}

	lvl := &Level{
		Number: yl.Number,
		Name:   yl.Name,
		Grid:   make([][]rules.BrickType, len(yl.Matrix)),
	}
	for r, row := range yl.Matrix {
		lvl.Grid[r] = make([]rules.BrickType, len(row))
		for c, v := range row {
			lvl.Grid[r][c] = rules.BrickType(v)
		}
	}

	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return lvl, nil
}

// LoadFile loads a single level file.
func LoadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: reading %s: %w", path, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: parsing %s: %w", path, err)
	}
	return lvl, nil
}

// LoadDir recursively loads every .yaml/.yml level under root, sorted
// by level number (ties by name). Any malformed file fails the whole
// load; a broken level pack should be fixed, not half-played.
func LoadDir(root string) ([]*Level, error) {
	var out []*Level

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		lvl, err := LoadFile(path)
		if err != nil {
			return err
		}
		out = append(out, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking %s: %w", root, err)
	}

	sortLevels(out)
	return out, nil
}

// Builtin returns the embedded level pack in play order.
func Builtin() ([]*Level, error) {
	var out []*Level

	err := fs.WalkDir(packFS, "packs", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := packFS.ReadFile(path)
		if err != nil {
			return err
		}
		lvl, err := Parse(data)
		if err != nil {
			return fmt.Errorf("embedded %s: %w", path, err)
		}
		out = append(out, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: builtin pack: %w", err)
	}

	sortLevels(out)
	return out, nil
}

func sortLevels(lvls []*Level) {
	sort.Slice(lvls, func(i, j int) bool {
		if lvls[i].Number != lvls[j].Number {
			return lvls[i].Number < lvls[j].Number
		}
		return lvls[i].Name < lvls[j].Name
	})
}
