package implicant

import "sort"

// nodeKind tags a graph node as arising from a free/forced assignment or
// from a conflict, per the two tagged variants in the data model.
type nodeKind int8

const (
	kindDecision nodeKind = iota
	kindConflict
)

// node is an implication-graph vertex. Nodes live in the graph's arena and
// are referenced from elsewhere only by pointer, never copied; seq records
// arena insertion order, which doubles as a topological order since every
// edge is added at the moment its source node already exists.
type node struct {
	kind  nodeKind
	v     *Variable // nil only for a conflict node with an empty antecedent
	value bool      // meaningful for decision nodes
	level int
	seq   int

	in  []*edge
	out []*edge
}

// edge is a directed, antecedent-labelled connection between two nodes.
type edge struct {
	from, to   *node
	antecedent *Clause
}

// Graph is the implication graph: an arena of nodes, a stack of free
// decisions (one per decision level), and at most one live conflict node.
type Graph struct {
	nodes     []*node
	decisions []*node // free decisions only, index i holds the decision at level i+1
	conflict  *node
	nextSeq   int
}

// NewGraph returns an empty implication graph.
func NewGraph() *Graph {
	return &Graph{}
}

func (g *Graph) newNode(kind nodeKind, v *Variable, value bool, level int) *node {
	n := &node{kind: kind, v: v, value: value, level: level, seq: g.nextSeq}
	g.nextSeq++
	g.nodes = append(g.nodes, n)
	return n
}

func (g *Graph) addEdge(from, to *node, antecedent *Clause) {
	e := &edge{from: from, to: to, antecedent: antecedent}
	from.out = append(from.out, e)
	to.in = append(to.in, e)
}

// AddDecision inserts an isolated decision node for a freely chosen
// variable assignment and pushes it onto the decision stack.
func (g *Graph) AddDecision(v *Variable, value bool, level int) {
	n := g.newNode(kindDecision, v, value, level)
	v.node = n
	g.decisions = append(g.decisions, n)
}

// AddForced inserts a decision node for an assignment forced by BCP, with
// an incoming edge labelled antecedent from the decision node of every
// other variable occurring in antecedent.
func (g *Graph) AddForced(v *Variable, value bool, antecedent *Clause, level int) error {
	n := g.newNode(kindDecision, v, value, level)
	for _, lit := range antecedent.Lits {
		if lit.Var == v {
			continue
		}
		pred := lit.Var.node
		if pred == nil {
			return &InternalInvariantViolationError{
				Reason: "BCP antecedent references a variable with no decision node: " + lit.Var.Name,
			}
		}
		g.addEdge(pred, n, antecedent)
	}
	v.node = n
	return nil
}

// AddConflict creates the single conflict node for the given falsified
// clause, with an incoming edge from the decision node of every variable
// in clause. v is nil when clause is empty (it has no literals, so the
// conflict node has no predecessors).
func (g *Graph) AddConflict(v *Variable, clause *Clause, level int) error {
	n := g.newNode(kindConflict, v, false, level)
	g.conflict = n
	for _, lit := range clause.Lits {
		pred := lit.Var.node
		if pred == nil {
			return &InternalInvariantViolationError{
				Reason: "conflict antecedent references a variable with no decision node: " + lit.Var.Name,
			}
		}
		g.addEdge(pred, n, clause)
	}
	return nil
}

// HasConflict reports whether a conflict node is currently live.
func (g *Graph) HasConflict() bool { return g.conflict != nil }

// FirstUIP computes the first Unique Implication Point for the live
// conflict: the dominator of the conflict node (with respect to the
// latest free decision) nearest the conflict. Returns nil if there is no
// conflict or no decisions have been made.
//
// Nodes are inserted in strictly increasing seq order and every edge
// points from an earlier-seq node to a later one (an antecedent's
// variables are always already assigned when the antecedent fires), so
// the arena order already is a topological order. Dominator sets are
// computed with one forward pass over that order: dom(root) = {root},
// and for every other reachable node dom(n) = {n} union the intersection
// of dom(p) over every predecessor p that is itself reachable from root.
func (g *Graph) FirstUIP() *node {
	if g.conflict == nil || len(g.decisions) == 0 {
		return nil
	}
	root := g.decisions[len(g.decisions)-1]
	target := g.conflict

	// S = nodes reachable forward from root AND able to reach target.
	reachFromRoot := reachableForward(root)
	if !reachFromRoot[target] {
		return nil
	}
	reachToTarget := reachableBackward(target)

	var sub []*node
	for n := range reachFromRoot {
		if reachToTarget[n] {
			sub = append(sub, n)
		}
	}
	sortBySeq(sub)

	dom := make(map[*node]map[*node]bool, len(sub))
	dom[root] = map[*node]bool{root: true}
	for _, n := range sub {
		if n == root {
			continue
		}
		var predDoms []map[*node]bool
		for _, e := range n.in {
			if d, ok := dom[e.from]; ok {
				predDoms = append(predDoms, d)
			}
		}
		d := map[*node]bool{n: true}
		if len(predDoms) > 0 {
			for cand := range predDoms[0] {
				inAll := true
				for _, other := range predDoms[1:] {
					if !other[cand] {
						inAll = false
						break
					}
				}
				if inAll {
					d[cand] = true
				}
			}
		}
		dom[n] = d
	}

	targetDom := dom[target]
	var best *node
	for cand := range targetDom {
		if cand == target {
			continue
		}
		if best == nil || cand.seq > best.seq {
			best = cand
		}
	}
	return best
}

// ConflictInfo walks forward from uip over every node reachable within the
// implication graph (necessarily all at or after uip's level, terminating
// at the conflict node), collecting each visited node's incoming
// antecedent clauses and predecessor levels. This generalizes "direct
// successors of the UIP" to a full forward closure, so that chains of
// forced assignments between the UIP and the conflict are accounted for.
func (g *Graph) ConflictInfo(uip *node) (antecedents []*Clause, levelsDesc []int) {
	seenClause := make(map[*Clause]bool)
	levels := make(map[int]bool)

	visited := make(map[*node]bool)
	queue := []*node{uip}
	visited[uip] = true
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, e := range n.out {
			s := e.to
			levels[s.level] = true
			for _, in := range s.in {
				if !seenClause[in.antecedent] {
					seenClause[in.antecedent] = true
					antecedents = append(antecedents, in.antecedent)
				}
				levels[in.from.level] = true
			}
			if !visited[s] {
				visited[s] = true
				queue = append(queue, s)
			}
		}
	}

	for lvl := range levels {
		levelsDesc = append(levelsDesc, lvl)
	}
	sortDesc(levelsDesc)
	return antecedents, levelsDesc
}

// Truncate removes every node with level > keepLevel, resets to Unassigned
// every variable whose decision node is removed, pops the decision stack
// down to keepLevel entries, and clears any live conflict node.
func (g *Graph) Truncate(keepLevel int) error {
	if keepLevel < 0 {
		return &InternalInvariantViolationError{Reason: "truncate requested a negative level"}
	}
	kept := make([]*node, 0, len(g.nodes))
	keepSet := make(map[*node]bool, len(g.nodes))
	for _, n := range g.nodes {
		if n.level <= keepLevel {
			kept = append(kept, n)
			keepSet[n] = true
		} else if n.kind == kindDecision && n.v != nil {
			// A conflict node's v is only a display label (the clause's
			// first literal's variable, set by conflictVariable) and may
			// name a variable whose actual decision node survives at a
			// lower level; only a removed decision node's own variable
			// is ever unassigned here.
			n.v.Value = Unassigned
			n.v.node = nil
		}
	}
	for _, n := range kept {
		n.out = filterEdges(n.out, func(e *edge) bool { return keepSet[e.to] })
	}
	g.nodes = kept

	if keepLevel < len(g.decisions) {
		g.decisions = g.decisions[:keepLevel]
	}
	g.conflict = nil
	return nil
}

func filterEdges(edges []*edge, keep func(*edge) bool) []*edge {
	out := edges[:0]
	for _, e := range edges {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

func reachableForward(start *node) map[*node]bool {
	seen := map[*node]bool{start: true}
	queue := []*node{start}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, e := range n.out {
			if !seen[e.to] {
				seen[e.to] = true
				queue = append(queue, e.to)
			}
		}
	}
	return seen
}

func reachableBackward(start *node) map[*node]bool {
	seen := map[*node]bool{start: true}
	queue := []*node{start}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, e := range n.in {
			if !seen[e.from] {
				seen[e.from] = true
				queue = append(queue, e.from)
			}
		}
	}
	return seen
}

func sortBySeq(nodes []*node) {
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].seq < nodes[j].seq })
}

func sortDesc(nums []int) {
	sort.Sort(sort.Reverse(sort.IntSlice(nums)))
}
