package topology

import (
	"fmt"

	"inet.af/netaddr"
)

// Severity ranks validation issues.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// An Issue is a semantic problem found by Validate. Issues never abort
// loading; callers decide how strict to be.
type Issue struct {
	Severity Severity
	Subject  string // identifies the node, port or link concerned
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s: %s", i.Severity, i.Subject, i.Message)
}

// Validate checks cross-cutting invariants that go beyond syntax and
// returns all problems found, in node identifier order. An empty result
// means the topology is clean.
func (t *T) Validate() []Issue {
	var issues []Issue
	addrUsed := make(map[netaddr.IP]string)

	for _, n := range t.Nodes() {
		if t.g.degree(n.ID) == 0 {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Subject:  n.ID,
				Message:  "node has no links",
			})
		}
		for _, p := range n.Ports() {
			id := p.ID().String()
			if v := p.Attr("ipv4"); !v.IsZero() {
				pfx, err := netaddr.ParseIPPrefix(v.String())
				switch {
				case err != nil:
					issues = append(issues, Issue{
						Severity: SeverityError,
						Subject:  id,
						Message:  fmt.Sprintf("ipv4 %q is not a valid CIDR address", v),
					})
				case !pfx.IP.Is4():
					issues = append(issues, Issue{
						Severity: SeverityError,
						Subject:  id,
						Message:  fmt.Sprintf("ipv4 %q is not an IPv4 address", v),
					})
				default:
					if prev, ok := addrUsed[pfx.IP]; ok {
						issues = append(issues, Issue{
							Severity: SeverityWarning,
							Subject:  id,
							Message:  fmt.Sprintf("address %s already used by %s", pfx.IP, prev),
						})
					} else {
						addrUsed[pfx.IP] = id
					}
				}
			}
			// Liveness is only attribute-tracked for explicitly
			// declared ports.
			if p.Link() != nil && p.declared && !p.Up() {
				issues = append(issues, Issue{
					Severity: SeverityWarning,
					Subject:  id,
					Message:  "linked port is not marked up",
				})
			}
		}
	}

	for _, l := range t.Links() {
		a, aok := l.A.IPv4()
		b, bok := l.B.IPv4()
		if aok && bok && !sameSubnet(a, b) {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Subject:  l.String(),
				Message:  fmt.Sprintf("endpoints %s and %s are in different subnets", a, b),
			})
		}
	}

	return issues
}

func sameSubnet(a, b netaddr.IPPrefix) bool {
	return a.Bits == b.Bits && a.Masked() == b.Masked()
}
