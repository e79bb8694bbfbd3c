package xref

import (
	"fmt"
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump renders the resolved graph for debugging: every identity with its
// export, reference count and referencing declarations, in identity order,
// followed by a spew dump of the implementer table and diagnostics.
func (s *State) Dump() string {
	members := make([]Member, 0, len(s.exports))
	for m := range s.exports {
		members = append(members, m)
	}

	sort.Slice(members, func(i, j int) bool {
		return members[i].String() < members[j].String()
	})

	var sb strings.Builder

	fmt.Fprintf(&sb, "state version %d: %d exports, %d referencing declarations\n",
		s.version, len(s.exports), len(s.references))

	for _, m := range members {
		info := s.exports[m]
		fmt.Fprintf(&sb, "%s <- %s", m, info.Export.Name())

		for _, ref := range info.References {
			fmt.Fprintf(&sb, " %s", ref.Name())
		}

		sb.WriteByte('\n')
	}

	implementers := make([]string, 0, len(s.implementers))
	for api := range s.implementers {
		implementers = append(implementers, api)
	}

	sort.Strings(implementers)

	for _, api := range implementers {
		fmt.Fprintf(&sb, "implementer %s = %s\n", api, s.implementers[api].Name())
	}

	if !s.diags.IsEmpty() {
		sb.WriteString(dumpConfig.Sdump(s.diags))
	}

	return sb.String()
}
