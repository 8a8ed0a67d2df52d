package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/mathgraph/shared/leveldata"
)

const fieldsDir = "fields"

var (
	//go:embed all:fields
	assetFS embed.FS
)

// FieldsFS exposes the embedded presets.
func FieldsFS() fs.FS { return assetFS }

// LoadPreset loads one embedded preset field by stem name.
func LoadPreset(name string) (*leveldata.Field, error) {
	f, err := leveldata.LoadField(assetFS, fmt.Sprintf("%s/%s.tmx", fieldsDir, name))
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", name, err)
	}
	return f, nil
}

// PresetNames lists the embedded preset fields.
func PresetNames() ([]string, error) {
	_, names, err := leveldata.LoadAllFields(assetFS, fieldsDir)
	return names, err
}
