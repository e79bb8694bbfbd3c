package decl

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"xref-assist/annotation"
)

// LoadFile loads a YAML snapshot description and builds an index from it.
func LoadFile(path string) (*MemoryIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file %s: %w", path, err)
	}

	sf, err := Parse(data)
	if err != nil {
		return nil, err
	}

	return sf.Build()
}

// Parse parses YAML data into a SnapshotFile.
func Parse(data []byte) (*SnapshotFile, error) {
	var sf SnapshotFile

	err := yaml.Unmarshal(data, &sf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse snapshot YAML: %w", err)
	}

	if sf.Version == "" {
		sf.Version = "1"
	}

	return &sf, nil
}

// Build populates a MemoryIndex from the snapshot description.
//
// Types are created first so mixin targets can reference each other
// regardless of declaration order; a target name that matches no declared
// type produces an implicit bare type, the same way a source file can
// reference a class outside the annotated set.
func (sf *SnapshotFile) Build() (*MemoryIndex, error) {
	ix := NewMemoryIndex()
	byName := make(map[string]*Type, len(sf.Types))

	for i := range sf.Types {
		td := &sf.Types[i]
		if td.Name == "" {
			return nil, fmt.Errorf("type %d: missing name", i)
		}

		if _, dup := byName[td.Name]; dup {
			return nil, fmt.Errorf("duplicate type %q", td.Name)
		}

		byName[td.Name] = ix.AddType(td.Name)
	}

	target := func(name string) *Type {
		if t, ok := byName[name]; ok {
			return t
		}

		t := ix.AddType(name)
		byName[name] = t

		return t
	}

	for i := range sf.Types {
		td := &sf.Types[i]
		t := byName[td.Name]

		if td.Implements != "" {
			t.Annotate(annotation.Implements, td.Implements)
		}

		for _, name := range td.Mixin {
			t.Target(target(name))
		}

		for j := range td.Members {
			md := &td.Members[j]

			var m *Member
			switch {
			case md.Constructor:
				m = t.AddConstructor()
			case md.Name == "":
				return nil, fmt.Errorf("type %q: member %d has no name", td.Name, j)
			case md.Static:
				m = t.AddStatic(md.Name)
			default:
				m = t.AddMember(md.Name)
			}

			for kind, value := range md.annotations() {
				m.Annotate(kind, value)
			}
		}
	}

	return ix, nil
}
