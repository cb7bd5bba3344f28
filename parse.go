package jsmnav

import (
	"github.com/arnodel/jsmnav/nav"
	"github.com/arnodel/jsmnav/tokenizer"
)

// Parse tokenizes text and returns a Doc to navigate it.  The Doc refers to
// text, which must not be modified while the Doc is in use.
func Parse(text []byte, opts ...tokenizer.Option) (nav.Doc, error) {
	toks, err := tokenizer.Tokenize(text, opts...)
	if err != nil {
		return nav.Doc{}, err
	}
	return nav.New(toks, text), nil
}
