package topology

import (
	"fmt"
	"strconv"
	"strings"

	"inet.af/netaddr"
)

// A PortID identifies a port as the pair of its owning node's identifier
// and the port number.
type PortID struct {
	Node string
	Num  int
}

func (id PortID) String() string {
	return fmt.Sprintf("%s:%d", id.Node, id.Num)
}

func parsePortID(s string) (PortID, error) {
	i := strings.IndexByte(s, ':')
	if i < 0 {
		return PortID{}, fmt.Errorf("%w: port reference %q must have the form node:port", ErrSyntax, s)
	}
	node, num := s[:i], s[i+1:]
	if !isValidIdent(node) {
		return PortID{}, fmt.Errorf("%w: invalid node identifier %q", ErrSyntax, node)
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 0 {
		return PortID{}, fmt.Errorf("%w: invalid port number %q", ErrSyntax, num)
	}
	return PortID{Node: node, Num: n}, nil
}

// A Port is an attachment point on a Node. Ports come from explicit port
// declarations and are also created implicitly when a link names them.
type Port struct {
	Node *Node
	Num  int

	attrs    attrs
	link     *Link
	declared bool // port had an explicit attribute declaration
}

// ID returns the port's (node, number) identifier.
func (p *Port) ID() PortID {
	return PortID{Node: p.Node.ID, Num: p.Num}
}

// IPv4 returns the network address configured on p through the ipv4
// attribute. The boolean return value is false if the attribute is absent
// or does not parse as an IPv4 CIDR address.
func (p *Port) IPv4() (netaddr.IPPrefix, bool) {
	s := p.attrs.str("ipv4")
	if s == "" {
		return netaddr.IPPrefix{}, false
	}
	pfx, err := netaddr.ParseIPPrefix(s)
	if err != nil || !pfx.IP.Is4() {
		return netaddr.IPPrefix{}, false
	}
	return pfx, true
}

// Up reports whether the port's up attribute is the boolean True.
func (p *Port) Up() bool {
	b, ok := p.attrs["up"].Bool()
	return ok && b
}

// Link returns the link p participates in, or nil for an unlinked port.
func (p *Port) Link() *Link { return p.link }

// Attr returns the port attribute associated with key, if any.
func (p *Port) Attr(key string) Value { return p.attrs[key] }

func (p *Port) String() string { return p.ID().String() }
