package srcscan

import "strings"

// Declarations returns the qualified names of the types declared in src,
// in source order. It is a single token pass, not a parse: each namespace
// declaration replaces the current namespace, and each type declaration
// after it is qualified with that namespace. Malformed input yields partial
// results.
func Declarations(src []byte, d Dialect) []string {
	toks := tokenize(src, d)
	var (
		names     []string
		namespace string
		depth     int
	)

	for i := 0; i < len(toks); i++ {
		t := toks[i]

		if t.kind == tokPunct {
			switch t.text {
			case "{":
				depth++
			case "}":
				if depth > 0 {
					depth--
				}
			}
			continue
		}
		if t.kind != tokWord || isMemberAccess(toks, i) {
			continue
		}

		switch {
		case d.isKeyword(t.text, d.NamespaceKeyword):
			// "namespace\foo()" is a relative name, not a declaration.
			if i+1 >= len(toks) || !toks[i+1].space {
				continue
			}
			namespace, i = readNamespace(toks, i+1, d)
			i--

		case d.isKeyword(t.text, d.ClassKeyword):
			if d.topLevelOnly && depth > 0 {
				continue
			}
			if i > 0 && toks[i-1].kind == tokWord && d.isKeyword(toks[i-1].text, "new") {
				continue // anonymous class
			}
			if i+1 >= len(toks) {
				continue
			}
			next := toks[i+1]
			switch {
			case next.kind == tokWord:
				names = append(names, d.Qualify(namespace, next.text))
				i++
			case d.typeGroups && next.text == "(":
				var group []string
				group, i = readTypeGroup(toks, i+2)
				for _, name := range group {
					names = append(names, d.Qualify(namespace, name))
				}
			}
		}
	}

	return names
}

// readNamespace joins the adjacent name and separator tokens starting at i.
// It returns the namespace and the index of the first token after it.
func readNamespace(toks []token, i int, d Dialect) (string, int) {
	var b strings.Builder
	for j := i; j < len(toks); j++ {
		t := toks[j]
		if j > i && t.space {
			return b.String(), j
		}
		if t.kind != tokWord && t.text != d.Separator {
			return b.String(), j
		}
		b.WriteString(t.text)
	}
	return b.String(), len(toks)
}

// readTypeGroup collects the names declared in a parenthesized type group
// whose body starts at i. It returns the names and the index of the closing
// parenthesis.
func readTypeGroup(toks []token, i int) ([]string, int) {
	var names []string
	depth := 1
	specStart := true
	for ; i < len(toks); i++ {
		t := toks[i]
		if depth == 1 && t.newline {
			specStart = true
		}
		switch t.text {
		case "(", "[", "{":
			depth++
			specStart = false
			continue
		case ")", "]", "}":
			depth--
			if depth == 0 {
				return names, i
			}
			continue
		case ";":
			if depth == 1 {
				specStart = true
			}
			continue
		}
		if depth == 1 && specStart && t.kind == tokWord {
			names = append(names, t.text)
		}
		specStart = false
	}
	return names, i
}

// isMemberAccess reports whether the word at i is used as a member or
// variable name, as in Foo::class, $obj->class or $namespace.
func isMemberAccess(toks []token, i int) bool {
	if i == 0 {
		return false
	}
	switch toks[i-1].text {
	case "::", "->", "?->", "$", ".":
		return true
	}
	return false
}
