package scan

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies a measurement type.
type Kind int

const (
	// KindOsmo is an osmotic gradient scan (osmolality vs elongation index).
	KindOsmo Kind = iota + 1
	// KindOxy is an oxygen gradient scan (pO2 vs elongation index).
	KindOxy
)

// ErrUnknownKind is returned for kinds without a name or analyzer.
var ErrUnknownKind = errors.New("unknown analysis kind")

var kindNames = map[Kind]string{
	KindOsmo: "osmo",
	KindOxy:  "oxy",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a name such as "osmo" to its Kind. Matching ignores case.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("scan: %w: %q", ErrUnknownKind, name)
}
