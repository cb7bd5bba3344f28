// Package jsmnav navigates tokenized JSON without building a tree.
//
// The package is organized into several sub-packages:
//
// - token: the Token type, a kind, a byte span and a child count
// - tokenizer: a jsmn-compatible tokenizer producing a flat token sequence
// - nav: structural queries over a token sequence (skip a subtree, n-th
//   child, child by name, leaf values, paths)
//
// A typical use is:
//
//	doc, err := jsmnav.Parse(text)
//	if err != nil {
//	    return err
//	}
//	j, err := doc.Lookup(0, "Paul.Children[1]")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(doc.String(doc.ValueOf(j)))
//
// Values are never decoded: the text of a string token is its raw JSON
// source without the quotes, escapes included.
//
// The CLI utility is in the directory cmd/jn.  You can install it with:
//
//	go install github.com/arnodel/jsmnav/cmd/jn
package jsmnav
