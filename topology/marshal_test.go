package topology

import (
	"reflect"
	"sort"
	"testing"
)

// graphShape reduces a topology to a comparable form: node declarations
// with attributes, port attributes and the set of links.
func graphShape(t *T) map[string][]string {
	shape := make(map[string][]string)
	var nodes, ports, links []string
	for _, n := range t.Nodes() {
		nodes = append(nodes, formatAttrs(n.attrs)+" "+n.ID)
		for _, p := range n.Ports() {
			ports = append(ports, formatAttrs(p.attrs)+" "+p.ID().String())
		}
	}
	for _, l := range t.Links() {
		a, b := l.A.ID().String(), l.B.ID().String()
		if b < a {
			a, b = b, a
		}
		links = append(links, a+" -- "+b)
	}
	sort.Strings(links)
	shape["nodes"], shape["ports"], shape["links"] = nodes, ports, links
	return shape
}

func TestMarshalRoundTrip(t *testing.T) {
	topo, err := ParseFile("testdata/basic.szn")
	if err != nil {
		t.Fatal(err)
	}
	again, err := Parse(topo.Marshal())
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if got, want := graphShape(again), graphShape(topo); !reflect.DeepEqual(got, want) {
		t.Errorf("round trip changed the graph:\ngot  %v\nwant %v", got, want)
	}
}

// String values that would re-tokenize as booleans or numbers must come
// back quoted.
func TestMarshalQuoting(t *testing.T) {
	const doc = `
[type=host name="True" rack="42"] a
`
	topo, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	again, err := Parse(topo.Marshal())
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	n := again.Node("a")
	if v := n.Attr("name"); v.Kind() != ValueString || v.String() != "True" {
		t.Errorf("name: got %v (%d), want string True", v, v.Kind())
	}
	if v := n.Attr("rack"); v.Kind() != ValueString || v.String() != "42" {
		t.Errorf("rack: got %v (%d), want string 42", v, v.Kind())
	}
}

func TestMarshalSampleSubset(t *testing.T) {
	const doc = `
[type=host name="Host 1"] hs1
[type=p4switch] sw1
[ipv4="10.0.10.1/24" up=True] hs1:1
hs1:1 -- sw1:1
`
	topo, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	want := `[name="Host 1" type=host] hs1
[type=p4switch] sw1
[ipv4=10.0.10.1/24 up=True] hs1:1
hs1:1 -- sw1:1
`
	if got := string(topo.Marshal()); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}
