// Command szntopo loads and validates a network topology as described by
// the SZN file provided as a positional argument, then prints a summary of
// its nodes, ports and links.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"inet.af/netaddr"

	"slrz.net/szntopo/topology"
)

var (
	validateOnly = flag.Bool("validateonly",
		os.Getenv("SZNTOPO_VALIDATE_ONLY") != "",
		"parse and validate without printing a summary")
	warnFatal = flag.Bool("werror", os.Getenv("SZNTOPO_WERROR") != "",
		"exit with status 2 when validation reports issues")
	autoAddr = flag.String("autoaddr", os.Getenv("SZNTOPO_AUTO_ADDR"),
		"assign addresses to unaddressed host ports from `prefix`")
	defaultsFile = flag.String("defaults", os.Getenv("SZNTOPO_DEFAULTS"),
		"load per-type image and command defaults from YAML `file`")
	quiet = flag.Bool("q", false,
		"suppress validation issue output")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix(filepath.Base(os.Args[0]) + ": ")
	if flag.Parse(); flag.NArg() != 1 {
		log.Fatalf("usage: szntopo [options…] topology.szn")
	}

	var topoOpts []topology.Option
	if s := *autoAddr; s != "" {
		prefix, err := netaddr.ParseIPPrefix(s)
		if err != nil {
			log.Fatalf("cannot parse autoaddr %q: %v", s, err)
		}
		topoOpts = append(topoOpts, topology.WithAutoAddressing(prefix))
	}
	if s := *defaultsFile; s != "" {
		topoOpts = append(topoOpts, topology.WithDefaultsFile(s))
	}

	topo, err := topology.ParseFile(flag.Arg(0), topoOpts...)
	if err != nil {
		log.Fatal(err)
	}

	issues := topo.Validate()
	if !*quiet {
		for _, issue := range issues {
			log.Print(issue)
		}
	}
	if !*validateOnly {
		printSummary(topo)
	}
	if len(issues) > 0 && *warnFatal {
		os.Exit(2)
	}
}

func printSummary(t *topology.T) {
	for _, n := range t.Nodes() {
		fmt.Printf("%s (%s, image %s)\n", n.ID, n.Type(), n.Image())
		for _, p := range n.Ports() {
			line := "  " + p.ID().String()
			if pfx, ok := p.IPv4(); ok {
				line += " " + pfx.String()
			}
			if l := p.Link(); l != nil {
				line += " -- " + l.Peer(p).ID().String()
			}
			fmt.Println(line)
		}
	}
	fmt.Printf("%d nodes, %d ports, %d links\n",
		len(t.Nodes()), len(t.Ports()), len(t.Links()))
}
