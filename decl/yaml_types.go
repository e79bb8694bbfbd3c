package decl

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"xref-assist/annotation"
)

// SnapshotFile is the YAML description of one codebase snapshot, used to
// populate a MemoryIndex declaratively.
type SnapshotFile struct {
	Version string     `yaml:"version"`
	Types   []TypeDecl `yaml:"types"`
}

// TypeDecl describes one type declaration.
type TypeDecl struct {
	Name string `yaml:"name"`
	// Implements is the external-API type name the type implements.
	Implements string `yaml:"implements,omitempty"`
	// Mixin lists the mixin target type names; a single name stands for the
	// singular annotation form, a list for the plural one.
	Mixin   TargetList   `yaml:"mixin,omitempty"`
	Members []MemberDecl `yaml:"members,omitempty"`
}

// MemberDecl describes one member declaration. At most one relation
// annotation is expected per member; an empty value means the annotation is
// absent.
type MemberDecl struct {
	Name        string `yaml:"name,omitempty"`
	Static      bool   `yaml:"static,omitempty"`
	Constructor bool   `yaml:"constructor,omitempty"`

	Export     string `yaml:"export,omitempty"`
	Import     string `yaml:"import,omitempty"`
	Copy       string `yaml:"copy,omitempty"`
	FieldHook  string `yaml:"fieldhook,omitempty"`
	MethodHook string `yaml:"methodhook,omitempty"`
	Replace    string `yaml:"replace,omitempty"`
	Shadow     string `yaml:"shadow,omitempty"`
}

// annotations returns the (kind, argument) pairs the member declares.
func (md *MemberDecl) annotations() map[annotation.Kind]string {
	out := make(map[annotation.Kind]string)

	for kind, value := range map[annotation.Kind]string{
		annotation.Export:     md.Export,
		annotation.Import:     md.Import,
		annotation.Copy:       md.Copy,
		annotation.FieldHook:  md.FieldHook,
		annotation.MethodHook: md.MethodHook,
		annotation.Replace:    md.Replace,
		annotation.Shadow:     md.Shadow,
	} {
		if value != "" {
			out[kind] = value
		}
	}

	return out
}

// TargetList holds mixin target type names.
type TargetList []string

// UnmarshalYAML implements custom YAML unmarshaling for TargetList.
// Accepts either a single name (the Mixin form) or a sequence of names
// (the Mixins form), preserving declared order.
func (l *TargetList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string

		err := node.Decode(&name)
		if err != nil {
			return err
		}

		if name != "" {
			*l = TargetList{name}
		} else {
			*l = TargetList{}
		}

		return nil

	case yaml.SequenceNode:
		var names []string

		err := node.Decode(&names)
		if err != nil {
			return err
		}

		*l = TargetList(names)

		return nil

	default:
		return fmt.Errorf("mixin targets must be a name or a list of names, got yaml kind %v", node.Kind)
	}
}
