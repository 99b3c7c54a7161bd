package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Dimension is an initial frame size, either an absolute cell count or a
// percentage of the terminal.
type Dimension struct {
	Value   int
	Percent bool
}

// Full is the "100%" default.
var Full = Dimension{Value: 100, Percent: true}

// ParseDimension accepts "N" or "N%". The empty string means Full.
func ParseDimension(s string) (Dimension, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Full, nil
	}

	percent := strings.HasSuffix(s, "%")
	n, err := strconv.Atoi(strings.TrimSuffix(s, "%"))
	if err != nil {
		return Dimension{}, errors.Wrapf(err, "invalid dimension %q", s)
	}
	if n <= 0 {
		return Dimension{}, errors.Errorf("dimension %q must be positive", s)
	}
	if percent && n > 100 {
		return Dimension{}, errors.Errorf("dimension %q exceeds 100%%", s)
	}

	return Dimension{Value: n, Percent: percent}, nil
}

// Resolve returns the cell count for a terminal axis of the given size.
func (d Dimension) Resolve(total int) int {
	if !d.Percent {
		return d.Value
	}
	return total * d.Value / 100
}

func (d Dimension) String() string {
	if d.Percent {
		return fmt.Sprintf("%d%%", d.Value)
	}
	return strconv.Itoa(d.Value)
}

func (d *Dimension) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return errors.Wrap(err, "dimension must be a string or number")
	}
	parsed, err := ParseDimension(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
