package wordtrie

import "strings"

// node represents one character position in the trie.
type node struct {
	children map[rune]*node
	end      bool
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Trie is an in-memory prefix tree over words, treated as sequences of
// Unicode code points. Words can be inserted but never removed, so every
// node lies on the path of at least one stored word.
//
// A Trie is not safe for concurrent use; callers sharing one across
// goroutines must provide their own synchronization.
type Trie struct {
	root *node
	// count is the number of distinct stored words. Insert only increments
	// it when the terminal node was not already marked, so re-inserting a
	// word does not inflate it.
	count int
}

// NewTrie creates a new empty trie.
func NewTrie() *Trie {
	return &Trie{root: newNode()}
}

// Insert adds word to the trie. Inserting a word twice leaves the trie
// unchanged. The empty word is allowed and marks the root itself.
func (t *Trie) Insert(word string) {
	current := t.root
	for _, ch := range word {
		next, exists := current.children[ch]
		if !exists {
			next = newNode()
			current.children[ch] = next
		}
		current = next
	}
	if !current.end {
		current.end = true
		t.count++
	}
}

// Len returns the number of distinct stored words.
func (t *Trie) Len() int {
	return t.count
}

// nodeForPrefix walks the character path for prefix and returns the node it
// ends at, or nil if the path does not exist.
func (t *Trie) nodeForPrefix(prefix string) *node {
	current := t.root
	for _, ch := range prefix {
		next, exists := current.children[ch]
		if !exists {
			return nil
		}
		current = next
	}
	return current
}

// Contains reports whether word was stored exactly, as opposed to merely
// being a prefix of a stored word.
func (t *Trie) Contains(word string) bool {
	n := t.nodeForPrefix(word)
	return n != nil && n.end
}

// StartsWith reports whether the character path for prefix exists in the
// trie. Unlike HasPrefix it is trivially true for the empty prefix, even on
// an empty trie, since the root always exists.
func (t *Trie) StartsWith(prefix string) bool {
	return t.nodeForPrefix(prefix) != nil
}

// HasPrefix reports whether at least one stored word starts with prefix.
// Because words are never removed, the existence of the prefix path already
// proves some stored word extends through it. For the empty prefix this
// holds iff the trie stores at least one word.
func (t *Trie) HasPrefix(prefix string) bool {
	if prefix == "" {
		return t.count > 0
	}
	return t.nodeForPrefix(prefix) != nil
}

// CountWordsWithSuffix returns the number of stored words ending in
// pattern. The comparison is exact and case-sensitive. The empty pattern
// matches every stored word.
//
// There is no reverse index: counting visits every node once, rebuilding
// each word from the path on the way down.
func (t *Trie) CountWordsWithSuffix(pattern string) int {
	if pattern == "" {
		return t.count
	}
	count := 0
	path := make([]rune, 0, 16)
	var walk func(n *node)
	walk = func(n *node) {
		if n.end && strings.HasSuffix(string(path), pattern) {
			count++
		}
		for ch, child := range n.children {
			path = append(path, ch)
			walk(child)
			path = path[:len(path)-1]
		}
	}
	walk(t.root)
	return count
}

// Words returns all stored words. Order is not specified.
func (t *Trie) Words() []string {
	words := make([]string, 0, t.count)
	path := make([]rune, 0, 16)
	var walk func(n *node)
	walk = func(n *node) {
		if n.end {
			words = append(words, string(path))
		}
		for ch, child := range n.children {
			path = append(path, ch)
			walk(child)
			path = path[:len(path)-1]
		}
	}
	walk(t.root)
	return words
}
