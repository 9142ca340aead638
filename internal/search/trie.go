// Package search provides prefix and fuzzy lookup over the label indices
// of an ontology snapshot.
package search

import "sort"

// trieNode is one node of a rune-keyed prefix trie over label strings.
type trieNode struct {
	children map[rune]*trieNode
	terminal bool
}

type trie struct {
	root *trieNode
	size int
}

func newTrie() *trie {
	return &trie{root: &trieNode{}}
}

// Insert adds a key to the trie. Duplicate inserts are no-ops.
func (t *trie) Insert(key string) {
	node := t.root
	for _, r := range key {
		if node.children == nil {
			node.children = make(map[rune]*trieNode)
		}
		child, ok := node.children[r]
		if !ok {
			child = &trieNode{}
			node.children[r] = child
		}
		node = child
	}
	if !node.terminal {
		node.terminal = true
		t.size++
	}
}

// Len returns the number of distinct keys.
func (t *trie) Len() int {
	return t.size
}

// KeysWithPrefix returns every stored key starting with prefix, in
// lexicographic order.
func (t *trie) KeysWithPrefix(prefix string) []string {
	node := t.root
	for _, r := range prefix {
		child, ok := node.children[r]
		if !ok {
			return nil
		}
		node = child
	}

	var keys []string
	collect(node, prefix, &keys)
	return keys
}

func collect(node *trieNode, path string, keys *[]string) {
	if node.terminal {
		*keys = append(*keys, path)
	}
	runes := make([]rune, 0, len(node.children))
	for r := range node.children {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	for _, r := range runes {
		collect(node.children[r], path+string(r), keys)
	}
}
