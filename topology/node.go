package topology

import "sort"

// A Node corresponds to a declared host or switch in the parsed topology.
type Node struct {
	ID string

	topo  *T
	attrs attrs
	ports []*Port
	links []*Link
}

// Type returns the NodeType associated with n.
func (n *Node) Type() NodeType {
	return nodeTypeFromString(n.attrs.str("type"))
}

// Name returns the node's human-readable name (the name attribute),
// falling back to its identifier.
func (n *Node) Name() string {
	if s := n.attrs.str("name"); s != "" {
		return s
	}
	return n.ID
}

// Image returns the container image requested for the node ('image' node
// attribute) or a type-specific default.
func (n *Node) Image() string {
	if s := n.attrs.str("image"); s != "" {
		return s
	}
	return n.topo.defaults[n.Type()].Image
}

// Command returns the command run when the node is brought up ('command'
// node attribute) or a type-specific default.
func (n *Node) Command() string {
	if s := n.attrs.str("command"); s != "" {
		return s
	}
	return n.topo.defaults[n.Type()].Command
}

// Ports returns the node's ports, ordered by port number.
func (n *Node) Ports() []*Port {
	ps := make([]*Port, len(n.ports))
	copy(ps, n.ports)
	sort.Slice(ps, func(i, j int) bool { return ps[i].Num < ps[j].Num })
	return ps
}

// Links returns all connections involving n as an endpoint.
func (n *Node) Links() []*Link {
	ls := make([]*Link, len(n.links))
	copy(ls, n.links)
	return ls
}

// Attr returns the node attribute associated with key, if any.
func (n *Node) Attr(key string) Value { return n.attrs[key] }

func (n *Node) String() string { return n.ID }

// NodeType describes a node's role in the topology and selects its default
// image and command attributes.
type NodeType int

// NOTE: do not change the string representations, they match the type
// attributes used in existing SZN files.

const (
	NoType NodeType = iota
	TypeHost
	TypeSwitch
	TypeP4Switch
)

func (t NodeType) String() string {
	switch t {
	case TypeHost:
		return "host"
	case TypeSwitch:
		return "switch"
	case TypeP4Switch:
		return "p4switch"
	}
	return "none"
}

func nodeTypeFromString(s string) NodeType {
	switch s {
	case "host":
		return TypeHost
	case "switch":
		return TypeSwitch
	case "p4switch":
		return TypeP4Switch
	}
	return NoType
}

// HasType returns whether n.Type() is in ts.
func HasType(n *Node, ts ...NodeType) bool {
	want := n.Type()
	for _, t := range ts {
		if t == want {
			return true
		}
	}
	return false
}
