package topology

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v3"
)

// nodeDefaults carries the per-type fallbacks applied when a node does not
// set the corresponding attribute itself.
type nodeDefaults struct {
	Image   string `yaml:"image"`
	Command string `yaml:"command"`
}

var builtinDefaults = map[NodeType]nodeDefaults{
	NoType:       {Image: "ubuntu", Command: "bash"},
	TypeHost:     {Image: "ubuntu", Command: "bash"},
	TypeSwitch:   {Image: "ubuntu", Command: "bash"},
	TypeP4Switch: {Image: "p4lang/behavioral-model", Command: "bash"},
}

// loadDefaults merges type defaults from a YAML document keyed by node
// type, e.g.
//
//	host:
//	  image: alpine
//	p4switch:
//	  image: p4lang/p4app
//	  command: simple_switch
func (t *T) loadDefaults(path string) error {
	p, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	var byType map[string]nodeDefaults
	if err := yaml.Unmarshal(p, &byType); err != nil {
		return fmt.Errorf("defaults %s: %w", path, err)
	}
	for s, d := range byType {
		typ := nodeTypeFromString(s)
		if typ == NoType && s != "none" {
			return fmt.Errorf("defaults %s: unknown node type %q", path, s)
		}
		cur := t.defaults[typ]
		if d.Image != "" {
			cur.Image = d.Image
		}
		if d.Command != "" {
			cur.Command = d.Command
		}
		t.defaults[typ] = cur
	}
	return nil
}
