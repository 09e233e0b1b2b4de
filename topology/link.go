package topology

import "fmt"

// A Link is an undirected connection between two ports on distinct nodes.
// A port participates in at most one link.
type Link struct {
	A, B *Port
}

// Peer returns the endpoint opposite to p, or nil when p is not an
// endpoint of l.
func (l *Link) Peer(p *Port) *Port {
	switch p {
	case l.A:
		return l.B
	case l.B:
		return l.A
	}
	return nil
}

// Nodes returns the two nodes joined by l.
func (l *Link) Nodes() (*Node, *Node) {
	return l.A.Node, l.B.Node
}

func (l *Link) String() string {
	return fmt.Sprintf("%s -- %s", l.A.ID(), l.B.ID())
}
