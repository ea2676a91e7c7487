package srcscan

import (
	"fmt"
	"strings"
)

// Dialect describes the surface syntax the lexer understands and the
// keywords that mark namespace and type declarations.
type Dialect struct {
	Name             string
	Ext              string
	NamespaceKeyword string
	ClassKeyword     string
	Separator        string

	// IgnoreSuffixes excludes files whose names end in any of these.
	IgnoreSuffixes []string

	foldKeywords bool // keywords match case-insensitively
	openTags     bool // source starts as inline text until <?php or <?=
	hashComments bool // # starts a line comment
	heredoc      bool // <<<ID ... ID blocks
	rawStrings   bool // `...` is an uninterpreted string
	topLevelOnly bool // declarations inside braces are ignored
	typeGroups   bool // "type (" introduces a group of declarations
}

var (
	// PHP matches namespace and class declarations in .php files and joins
	// them with a backslash.
	PHP = Dialect{
		Name:             "php",
		Ext:              ".php",
		NamespaceKeyword: "namespace",
		ClassKeyword:     "class",
		Separator:        `\`,
		foldKeywords:     true,
		openTags:         true,
		hashComments:     true,
		heredoc:          true,
	}

	// Go matches package clauses and type declarations in .go files and joins
	// them with a dot. Test files are ignored.
	Go = Dialect{
		Name:             "go",
		Ext:              ".go",
		NamespaceKeyword: "package",
		ClassKeyword:     "type",
		Separator:        ".",
		IgnoreSuffixes:   []string{"_test.go"},
		rawStrings:       true,
		topLevelOnly:     true,
		typeGroups:       true,
	}
)

// ParseDialect returns the dialect registered under name. An empty name means PHP.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "php":
		return PHP, nil
	case "go", "golang":
		return Go, nil
	}
	return Dialect{}, fmt.Errorf("%w: %q", ErrUnknownDialect, name)
}

// String implements fmt.Stringer.
func (d Dialect) String() string {
	return d.Name
}

// Matches reports whether a file name belongs to the dialect.
func (d Dialect) Matches(name string) bool {
	if !strings.HasSuffix(name, d.Ext) {
		return false
	}
	for _, s := range d.IgnoreSuffixes {
		if strings.HasSuffix(name, s) {
			return false
		}
	}
	return true
}

// Qualify joins a namespace and a short name. An empty namespace still
// yields a separator prefix, so `C` in the global PHP namespace is `\C`.
func (d Dialect) Qualify(namespace, name string) string {
	return namespace + d.Separator + name
}

func (d Dialect) isKeyword(word, keyword string) bool {
	if d.foldKeywords {
		return strings.EqualFold(word, keyword)
	}
	return word == keyword
}
