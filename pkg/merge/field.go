package merge

import (
	"regexp"
	"sort"
	"strings"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/arthur-debert/dotmerge/pkg/errors"
	"github.com/arthur-debert/dotmerge/pkg/types"
)

// FieldResult is the pure outcome of updating a structured field.
type FieldResult struct {
	Content string
	Outcome types.Outcome

	// Line is the 1-based line of the authoritative declaration, 0 if none.
	Line int

	// Malformed lists 1-based lines that declare the field but could not be
	// parsed; they are left untouched.
	Malformed []int
}

// declaration is a parsed field declaration spanning lines[start..end].
type declaration struct {
	start, end int
	head       string // indentation, optional export, name and '='
	suffix     string // whatever follows the value on the last line
	scalar     string
	tokens     []string // set words as written in the file
}

// absent never finds a fragment; declarations are located by findDeclaration.
type absent struct{}

func (absent) Present(string, types.Fragment) bool { return false }

// UpdateField returns the contents after applying field. Scalars are
// compared by value and overwritten; sets are merged with the existing
// words and rendered sorted. Without a usable declaration a new one is
// always appended, even if the same text already sits in a comment.
func UpdateField(content string, exists bool, field types.StructuredField) (FieldResult, error) {
	if field.Name == "" {
		return FieldResult{}, errors.New(errors.ErrInvalidInput, "field has no name")
	}
	if !field.Kind.Valid() {
		return FieldResult{}, errors.Newf(errors.ErrInvalidInput, "field %s has unknown kind %q", field.Name, field.Kind)
	}

	lines, trailing := splitLines(content)
	decl, malformed := findDeclaration(lines, field)

	if decl == nil {
		updated, _ := AppendFragment(content, exists, types.Fragment{Content: renderNew(field)}, absent{})
		return FieldResult{Content: updated, Outcome: types.OutcomeAppendedAsNew, Malformed: malformed}, nil
	}

	result := FieldResult{Content: content, Outcome: types.OutcomeUnchanged, Line: decl.start + 1, Malformed: malformed}

	var replacement string
	switch field.Kind {
	case types.ValueScalar:
		if decl.scalar == field.Value {
			return result, nil
		}
		replacement = decl.head + quoteScalar(field.Value) + decl.suffix
	case types.ValueSet:
		replacement = decl.head + renderSet(MergeTokens(decl.tokens, quoteWords(field.Values))) + decl.suffix
		if replacement == strings.Join(lines[decl.start:decl.end+1], "\n") {
			return result, nil
		}
	}

	rewritten := make([]string, 0, len(lines)-(decl.end-decl.start))
	rewritten = append(rewritten, lines[:decl.start]...)
	rewritten = append(rewritten, replacement)
	rewritten = append(rewritten, lines[decl.end+1:]...)

	result.Content = joinLines(rewritten, trailing)
	result.Outcome = types.OutcomeUpdated
	return result, nil
}

// MergeTokens returns the sorted union of current and target, without
// duplicates or empty tokens. Tokens are compared as written.
func MergeTokens(current, target []string) []string {
	seen := make(map[string]struct{}, len(current)+len(target))
	merged := make([]string, 0, len(current)+len(target))
	for _, list := range [][]string{current, target} {
		for _, tok := range list {
			if tok == "" {
				continue
			}
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			merged = append(merged, tok)
		}
	}
	sort.Strings(merged)
	return merged
}

func declarationPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`^(\s*(?:export\s+)?` + regexp.QuoteMeta(name) + `\s*=\s*)(.*)$`)
}

// findDeclaration returns the first well-formed declaration of field, and
// the lines of any malformed ones met before it.
func findDeclaration(lines []string, field types.StructuredField) (*declaration, []int) {
	pattern := declarationPattern(field.Name)
	var malformed []int

	for i, line := range lines {
		m := pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		var decl *declaration
		if field.Kind == types.ValueSet {
			decl = parseSet(lines, i, m[1], m[2])
		} else {
			decl = parseScalar(i, m[1], m[2])
		}
		if decl == nil {
			malformed = append(malformed, i+1)
			continue
		}
		return decl, malformed
	}
	return nil, malformed
}

func parseScalar(i int, head, rest string) *declaration {
	decl := &declaration{start: i, end: i, head: head}
	if rest == "" {
		return decl
	}

	switch rest[0] {
	case '"':
		for j := 1; j < len(rest); j++ {
			switch rest[j] {
			case '\\':
				j++
			case '"':
				decl.scalar = scalarUnescaper.Replace(rest[1:j])
				decl.suffix = rest[j+1:]
				return decl
			}
		}
		return nil
	case '\'':
		end := strings.IndexByte(rest[1:], '\'')
		if end < 0 {
			return nil
		}
		decl.scalar = rest[1 : end+1]
		decl.suffix = rest[end+2:]
		return decl
	case '(':
		// an array where a scalar is expected
		return nil
	}

	end := strings.IndexAny(rest, " \t;")
	if end < 0 {
		end = len(rest)
	}
	decl.scalar = rest[:end]
	decl.suffix = rest[end:]
	return decl
}

// parseSet parses name=(a b c), allowing the parenthesised list to span
// several lines. Returns nil when the list is not closed before the next
// statement or leaves a quote open.
func parseSet(lines []string, i int, head, rest string) *declaration {
	if !strings.HasPrefix(rest, "(") {
		return nil
	}

	var inner []string
	text := rest[1:]
	for j := i; j < len(lines); j++ {
		if j > i {
			text = lines[j]
		}
		stripped := stripComment(text)
		if j > i && strings.ContainsAny(stripped, "=(") {
			// ran into the next statement before the list was closed
			return nil
		}
		if closing := closingParen(stripped); closing >= 0 {
			inner = append(inner, stripped[:closing])
			tokens, ok := splitWords(strings.Join(inner, " "))
			if !ok {
				return nil
			}
			return &declaration{start: i, end: j, head: head, suffix: text[closing+1:], tokens: tokens}
		}
		inner = append(inner, stripped)
	}
	return nil
}

// closingParen returns the index of the first ')' outside quotes, or -1.
func closingParen(s string) int {
	var quote byte
	for k := 0; k < len(s); k++ {
		c := s[k]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			} else if c == '\\' && quote == '"' {
				k++
			}
		case c == '\\':
			k++
		case c == '"' || c == '\'':
			quote = c
		case c == ')':
			return k
		}
	}
	return -1
}

// splitWords splits s on whitespace outside quotes, keeping each word's
// source text. ok is false when a quote is left open.
func splitWords(s string) (words []string, ok bool) {
	var quote byte
	start := -1
	for k := 0; k < len(s); k++ {
		c := s[k]
		if start < 0 && c != ' ' && c != '\t' {
			start = k
		}
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			} else if c == '\\' && quote == '"' {
				k++
			}
		case c == '\\':
			k++
		case c == '"' || c == '\'':
			quote = c
		case c == ' ' || c == '\t':
			if start >= 0 {
				words = append(words, s[start:k])
				start = -1
			}
		}
	}
	if quote != 0 {
		return nil, false
	}
	if start >= 0 {
		words = append(words, s[start:])
	}
	return words, true
}

// stripComment drops a trailing "# ..." that starts a word.
func stripComment(s string) string {
	for k := 0; k < len(s); k++ {
		if s[k] == '#' && (k == 0 || s[k-1] == ' ' || s[k-1] == '\t') {
			return s[:k]
		}
	}
	return s
}

// quoteScalar double-quotes v, escaping backslashes and double quotes.
// $ and ` are left as they are.
func quoteScalar(v string) string {
	return `"` + scalarEscaper.Replace(v) + `"`
}

var (
	scalarEscaper   = strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	scalarUnescaper = strings.NewReplacer(`\\`, `\`, `\"`, `"`)
)

// quoteWords renders configured set values as shell words, quoting only
// those that need it.
func quoteWords(values []string) []string {
	words := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		words = append(words, shellquote.Join(v))
	}
	return words
}

func renderSet(words []string) string {
	return "(" + strings.Join(words, " ") + ")"
}

// renderNew renders a fresh declaration line for field.
func renderNew(field types.StructuredField) string {
	if field.Kind == types.ValueSet {
		return field.Name + "=" + renderSet(MergeTokens(nil, quoteWords(field.Values)))
	}
	return field.Name + "=" + quoteScalar(field.Value)
}
