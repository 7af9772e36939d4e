package lineedit

// Action is invoked when a bound byte sequence is matched, or as the fallback
// for unmatched bytes. It receives the byte the dispatcher was considering
// when it fired: the final byte of the sequence, the lookahead byte that cut
// an ambiguous match short, or (for the fallback) the unmatched byte itself.
// A non-nil error aborts the decode loop.
type Action func(c byte) error

// sequenceTrie maps byte sequences to actions with longest-match lookup.
//
// Nodes live in a flat arena and refer to each other by index, with index 0
// as the root. A node may carry both an action and children: that marks an
// ambiguous prefix, where a shorter bound sequence is the prefix of a longer
// one and the decision needs one byte of lookahead.
type sequenceTrie struct {
	nodes []trieNode
}

type trieNode struct {
	children map[byte]int
	action   Action
}

const trieRoot = 0

func newSequenceTrie() *sequenceTrie {
	return &sequenceTrie{
		nodes: []trieNode{{}},
	}
}

// insert binds seq to action, creating intermediate nodes as needed.
// Binding a sequence that is a prefix (or extension) of an existing one is
// legal. Rebinding an existing sequence replaces its action.
// Does nothing for an empty sequence.
func (t *sequenceTrie) insert(seq []byte, action Action) {
	if len(seq) == 0 {
		return
	}

	node := trieRoot
	for _, c := range seq {
		child, ok := t.nodes[node].children[c]
		if !ok {
			t.nodes = append(t.nodes, trieNode{})
			child = len(t.nodes) - 1
			if t.nodes[node].children == nil {
				t.nodes[node].children = make(map[byte]int)
			}
			t.nodes[node].children[c] = child
		}
		node = child
	}
	t.nodes[node].action = action
}

// child returns the node reached from id by c, or -1 if no edge exists.
func (t *sequenceTrie) child(id int, c byte) int {
	if next, ok := t.nodes[id].children[c]; ok {
		return next
	}
	return -1
}

// action returns the action stored at id, or nil.
func (t *sequenceTrie) action(id int) Action {
	return t.nodes[id].action
}

// isLeaf returns true if id has no children, meaning no bound sequence
// extends past it and a match there needs no lookahead.
func (t *sequenceTrie) isLeaf(id int) bool {
	return len(t.nodes[id].children) == 0
}
