// Package topology loads SZN topology descriptions: line-oriented text
// declaring nodes, their ports and the links between them. Parsing is
// fail-fast and yields an immutable in-memory graph; semantic checks
// beyond syntax are reported separately by Validate.
//
// The format knows three declaration shapes, each optionally preceded by a
// [key=value ...] attribute bag:
//
//	[type=host name="Host 1"] hs1
//	[ipv4="10.0.10.1/24" up=True] hs1:1
//	hs1:1 -- sw1:1
//
// Lines whose first non-blank character is '#' are comments and carry no
// data. Declaration order is irrelevant: ports and links may reference
// nodes declared later in the document.
package topology

import (
	"fmt"
	"io/ioutil"
	"sort"

	"inet.af/netaddr"
)

// T represents a parsed network topology graph.
type T struct {
	g     *topoGraph
	nodes map[string]*Node
	ports map[PortID]*Port
	links []*Link
	src   []byte

	autoAddr     bool
	autoPrefix   netaddr.IPPrefix
	defaults     map[NodeType]nodeDefaults
	defaultsPath string
}

// Option may be passed to Parse to customize topology processing.
type Option func(*T)

// WithAutoAddressing makes Parse assign an ipv4 address from prefix to
// every linked host port that does not carry one. Explicitly configured
// addresses inside prefix are reserved first. Ports on switches are left
// unaddressed.
func WithAutoAddressing(prefix netaddr.IPPrefix) Option {
	return func(t *T) {
		t.autoAddr = true
		t.autoPrefix = prefix
	}
}

// WithDefaultsFile overrides the builtin per-type image and command
// defaults with the ones given in the named YAML file.
func WithDefaultsFile(path string) Option {
	return func(t *T) {
		t.defaultsPath = path
	}
}

// Parse unmarshals a topology description. It returns the topology
// described by it or, for a malformed document, a *ParseError identifying
// the first offending line.
func Parse(p []byte, opts ...Option) (*T, error) {
	t := &T{
		g:        newTopoGraph(),
		nodes:    make(map[string]*Node),
		ports:    make(map[PortID]*Port),
		defaults: make(map[NodeType]nodeDefaults),
	}
	for typ, d := range builtinDefaults {
		t.defaults[typ] = d
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.defaultsPath != "" {
		if err := t.loadDefaults(t.defaultsPath); err != nil {
			return nil, fmt.Errorf("Parse: %w", err)
		}
	}

	lines, err := scan(string(p))
	if err != nil {
		return nil, err
	}

	// First pass: register node declarations so that ports and links may
	// reference nodes declared anywhere in the document.
	for _, l := range lines {
		if l.kind != lineNode {
			continue
		}
		if t.nodes[l.id] != nil {
			return nil, errAt(l, fmt.Errorf("%w: %s declared twice", ErrDuplicateNode, l.id))
		}
		n := &Node{ID: l.id, topo: t, attrs: l.attrs}
		if n.attrs == nil {
			n.attrs = make(attrs)
		}
		t.nodes[l.id] = n
		t.g.addNode(n)
	}

	// Second pass: resolve port and link declarations against the node
	// set, in document order.
	for _, l := range lines {
		switch l.kind {
		case linePort:
			if err := t.addPortDecl(l); err != nil {
				return nil, err
			}
		case lineLink:
			if err := t.addLinkDecl(l); err != nil {
				return nil, err
			}
		}
	}

	if t.autoAddr {
		if err := t.autoAddress(); err != nil {
			return nil, fmt.Errorf("Parse: %w", err)
		}
	}

	// Stash a copy of the input document for later use.
	t.src = make([]byte, len(p))
	copy(t.src, p)

	return t, nil
}

// ParseFile is like Parse but reads the topology description from the file
// located by path.
func ParseFile(path string, opts ...Option) (*T, error) {
	p, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ParseFile: %w", err)
	}
	return Parse(p, opts...)
}

func (t *T) addPortDecl(l *rawLine) error {
	n := t.nodes[l.port.Node]
	if n == nil {
		return errAt(l, fmt.Errorf("%w: %s", ErrUnknownNode, l.port.Node))
	}
	p := t.ports[l.port]
	if p == nil {
		p = t.newPort(n, l.port.Num)
	}
	p.declared = true
	for k, v := range l.attrs {
		if old, ok := p.attrs[k]; ok && old != v {
			return errAt(l, fmt.Errorf("%w: %s redefines %s=%s as %s",
				ErrDuplicatePort, l.port, k, old, v))
		}
		p.attrs[k] = v
	}
	return nil
}

func (t *T) addLinkDecl(l *rawLine) error {
	if l.a == l.b {
		return errAt(l, fmt.Errorf("%w: %s", ErrSelfLink, l.a))
	}
	if l.a.Node == l.b.Node {
		return errAt(l, fmt.Errorf("%w: both endpoints on node %s", ErrSelfLink, l.a.Node))
	}
	for _, id := range []PortID{l.a, l.b} {
		if t.nodes[id.Node] == nil {
			return errAt(l, fmt.Errorf("%w: %s", ErrUnknownNode, id.Node))
		}
	}
	a := t.ports[l.a]
	if a == nil {
		a = t.newPort(t.nodes[l.a.Node], l.a.Num)
	}
	b := t.ports[l.b]
	if b == nil {
		b = t.newPort(t.nodes[l.b.Node], l.b.Num)
	}
	for _, p := range []*Port{a, b} {
		other := p.link
		if other == nil {
			continue
		}
		if (other.A == a && other.B == b) || (other.A == b && other.B == a) {
			return errAt(l, fmt.Errorf("%w: %s", ErrDuplicateLink, other))
		}
		return errAt(l, fmt.Errorf("%w: port %s is already part of %s",
			ErrDuplicateLink, p.ID(), other))
	}

	ln := &Link{A: a, B: b}
	a.link, b.link = ln, ln
	a.Node.links = append(a.Node.links, ln)
	b.Node.links = append(b.Node.links, ln)
	t.links = append(t.links, ln)
	t.g.addLink(ln)
	return nil
}

func (t *T) newPort(n *Node, num int) *Port {
	p := &Port{Node: n, Num: num, attrs: make(attrs)}
	t.ports[p.ID()] = p
	n.ports = append(n.ports, p)
	return p
}

// autoAddress assigns addresses from t.autoPrefix to linked non-switch
// ports lacking an ipv4 attribute.
func (t *T) autoAddress() error {
	a := newIPAllocator(t.autoPrefix)
	// reserve addresses configured with explicit port attrs
	for _, p := range t.ports {
		pfx, ok := p.IPv4()
		if !ok || !t.autoPrefix.Contains(pfx.IP) {
			continue
		}
		if !a.reserve(pfx.IP) {
			return fmt.Errorf("port %s: unable to reserve ip %s", p.ID(), pfx.IP)
		}
	}
	for _, n := range t.Nodes() {
		if HasType(n, TypeSwitch, TypeP4Switch) {
			continue
		}
		for _, p := range n.Ports() {
			if p.link == nil || !p.attrs["ipv4"].IsZero() {
				continue
			}
			ip, ok := a.allocate()
			if !ok {
				return fmt.Errorf("port %s: address range exhausted (prefix: %s)",
					p.ID(), t.autoPrefix)
			}
			p.attrs["ipv4"] = StringValue(fmt.Sprintf("%s/%d", ip, t.autoPrefix.Bits))
		}
	}
	return nil
}

// Nodes returns the topology's nodes in identifier order.
func (t *T) Nodes() []*Node {
	ns := make([]*Node, 0, len(t.nodes))
	for _, n := range t.nodes {
		ns = append(ns, n)
	}
	sort.Slice(ns, func(i, j int) bool { return ns[i].ID < ns[j].ID })
	return ns
}

// Node returns the node declared with the given identifier, if any.
func (t *T) Node(id string) *Node { return t.nodes[id] }

// Port resolves (node, num) to a port, returning nil when the topology has
// no such port.
func (t *T) Port(node string, num int) *Port {
	return t.ports[PortID{Node: node, Num: num}]
}

// Ports returns every port in the topology, grouped by node and ordered by
// port number.
func (t *T) Ports() []*Port {
	var ps []*Port
	for _, n := range t.Nodes() {
		ps = append(ps, n.Ports()...)
	}
	return ps
}

// Links returns the connections between nodes, in declaration order.
func (t *T) Links() []*Link {
	ls := make([]*Link, len(t.links))
	copy(ls, t.links)
	return ls
}

// Neighbors returns the nodes sharing a link with the named node.
func (t *T) Neighbors(id string) []*Node {
	return t.g.neighbors(id)
}

// Source returns the original input document.
func (t *T) Source() []byte {
	return append([]byte(nil), t.src...)
}
