// Package graph renders circuits as diagrams.
package graph

import (
	"fmt"
	"strings"

	"github.com/db47h/pulsesim"
)

// Mermaid produces a Mermaid flowchart of n. Node shapes follow the module
// role:
//   - Broadcast: ((Circle))
//   - FlipFlop: [/Parallelogram/]
//   - Conjunction: {{Hexagon}}
//   - undeclared receivers: [Rectangle]
//
// Edges are listed per module in receiver order.
func Mermaid(n *pulsesim.Network) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	names := n.Names()
	for _, name := range names {
		m, _ := n.Module(name)
		opener, closer := "((", "))"
		label := name
		switch m.Role() {
		case pulsesim.FlipFlop:
			opener, closer = "[/", "/]"
			label = "%" + name
		case pulsesim.Conjunction:
			opener, closer = "{{", "}}"
			label = "&" + name
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", sanitizeID(name), opener, label, closer)
	}
	for _, name := range n.Dangling() {
		fmt.Fprintf(&sb, "    %s[\"%s\"]\n", sanitizeID(name), name)
	}

	for _, name := range names {
		m, _ := n.Module(name)
		for _, r := range m.Receivers() {
			fmt.Fprintf(&sb, "    %s --> %s\n", sanitizeID(name), sanitizeID(r))
		}
	}
	return sb.String()
}

// sanitizeID prefixes ids so that Mermaid keywords such as "end" or "graph"
// can be used as module names.
func sanitizeID(id string) string {
	return "m_" + id
}
