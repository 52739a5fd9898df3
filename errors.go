package wordtrie

import "errors"

// ErrInvalidArgumentType reports that a value expected to be a string was
// something else, e.g. a number inside a JSON word list. It is returned
// before any word has been handed to the trie.
var ErrInvalidArgumentType = errors.New("argument must be a string")
