package nav

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// A Step is one level of descent in a path: by key name or by child index.
type Step struct {
	Name   string
	Index  int
	ByName bool
}

// NameStep returns a step selecting the key called name.
func NameStep(name string) Step {
	return Step{Name: name, ByName: true}
}

// IndexStep returns a step selecting the n-th child.
func IndexStep(n int) Step {
	return Step{Index: n}
}

// String returns the step in the syntax read by ParsePath.
func (s Step) String() string {
	if !s.ByName {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	if strings.ContainsAny(s.Name, `.[]"\`) || s.Name == "" {
		return quoteName(s.Name)
	}
	return "." + s.Name
}

// quoteName writes name in brackets.  Escape sequences already in name are
// kept as they are, a quote or a final backslash on its own gets escaped so
// that the result can be parsed.
func quoteName(name string) string {
	var b strings.Builder
	b.WriteString(`["`)
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '\\' && i+1 < len(name):
			b.WriteByte(c)
			i++
			b.WriteByte(name[i])
		case c == '\\' || c == '"':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteString(`"]`)
	return b.String()
}

// ParsePath splits a path into steps.  The syntax is
//
//	Paul.Children[1]    key "Paul", key "Children", child 1
//	[1].Age             child 1, key "Age"
//	["a.b"][0]          key "a.b", child 0
//
// A path may start with a key name without a leading dot.  Unquoted names
// end at the next '.' or '[' and may not contain ']'.  Quoted names are
// compared with the raw text of keys, so they should be written as they
// appear in the JSON source, escapes included.  The empty path has no
// steps.
func ParsePath(path string) ([]Step, error) {
	var steps []Step
	pos := 0
	if path != "" && path[0] != '.' && path[0] != '[' {
		name, n := scanName(path)
		steps = append(steps, NameStep(name))
		pos = n
	}
	for pos < len(path) {
		switch path[pos] {
		case '.':
			pos++
			name, n := scanName(path[pos:])
			if n == 0 {
				return nil, pathError(path, pos, "expected a key name")
			}
			steps = append(steps, NameStep(name))
			pos += n
		case '[':
			pos++
			step, n, err := scanBracket(path[pos:])
			if err != nil {
				return nil, pathError(path, pos, err.Error())
			}
			steps = append(steps, step)
			pos += n
		default:
			return nil, pathError(path, pos, "expected '.' or '['")
		}
	}
	return steps, nil
}

// scanName reads an unquoted name.  It stops at ']' too, which the caller
// then rejects.
func scanName(s string) (string, int) {
	n := strings.IndexAny(s, ".[]")
	if n < 0 {
		n = len(s)
	}
	return s[:n], n
}

// scanBracket reads what follows a '[', up to and including the matching
// ']'.
func scanBracket(s string) (Step, int, error) {
	if strings.HasPrefix(s, `"`) {
		for i := 1; i < len(s); i++ {
			switch s[i] {
			case '\\':
				i++
			case '"':
				if i+1 >= len(s) || s[i+1] != ']' {
					return Step{}, 0, errors.New("expected ']' after quoted name")
				}
				return NameStep(s[1:i]), i + 2, nil
			}
		}
		return Step{}, 0, errors.New("unterminated quoted name")
	}
	end := strings.IndexByte(s, ']')
	if end < 0 {
		return Step{}, 0, errors.New("missing ']'")
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n < 0 {
		return Step{}, 0, fmt.Errorf("invalid index %q", s[:end])
	}
	return IndexStep(n), end + 1, nil
}

func pathError(path string, pos int, msg string) error {
	return fmt.Errorf("%w %q at %d: %s", ErrBadPath, path, pos, msg)
}

// Resolve applies steps one after the other starting from i and returns the
// position reached.  A name step moves to the key, so the result may be a
// name: use ValueOf to get the value.  On failure it returns i and an error
// naming the step that failed.
func (d Doc) Resolve(i int, steps []Step) (int, error) {
	cur := i
	for k, step := range steps {
		var next int
		var err error
		if step.ByName {
			next, err = d.ChildNamed(cur, step.Name)
		} else {
			next, err = d.ChildAt(cur, step.Index)
		}
		if err != nil {
			return i, fmt.Errorf("step %d (%s): %w", k, step, err)
		}
		cur = next
	}
	return cur, nil
}

// Lookup parses path and resolves it from i.
func (d Doc) Lookup(i int, path string) (int, error) {
	steps, err := ParsePath(path)
	if err != nil {
		return i, err
	}
	return d.Resolve(i, steps)
}
