package morphan

import "strings"

// Pattern is an insert/delete script turning an exemplar stem into its
// lexeme. It is built by DerivePattern and replayed by ApplyPattern.
//
// A pattern is a sequence of operations read left to right:
//
//	' '      keep the next source character
//	'-' c    drop the next source character, which must be c
//	'+' c    emit c without consuming the source
type Pattern string

const (
	opEqual  = ' '
	opDelete = '-'
	opInsert = '+'
)

// DerivePattern computes the shortest equal/delete/insert script from
// source to target using a longest-common-subsequence alignment over runes.
// A substituted character shows up as a delete followed by an insert.
func DerivePattern(source, target string) Pattern {
	a, b := []rune(source), []rune(target)
	n, m := len(a), len(b)

	// lcs[i][j] is the LCS length of a[i:] and b[j:].
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	var sb strings.Builder
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case a[i] == b[j]:
			sb.WriteRune(opEqual)
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			sb.WriteRune(opDelete)
			sb.WriteRune(a[i])
			i++
		default:
			sb.WriteRune(opInsert)
			sb.WriteRune(b[j])
			j++
		}
	}
	for ; i < n; i++ {
		sb.WriteRune(opDelete)
		sb.WriteRune(a[i])
	}
	for ; j < m; j++ {
		sb.WriteRune(opInsert)
		sb.WriteRune(b[j])
	}
	return Pattern(sb.String())
}

// SourceLen returns the number of source characters the pattern consumes,
// i.e. the only stem length it can be applied to.
func (p Pattern) SourceLen() (int, error) {
	ops := []rune(string(p))
	n := 0
	for i := 0; i < len(ops); i++ {
		switch ops[i] {
		case opEqual:
			n++
		case opDelete, opInsert:
			if i+1 >= len(ops) {
				return 0, &PatternError{Pattern: p, Pos: i}
			}
			if ops[i] == opDelete {
				n++
			}
			i++
		default:
			return 0, &PatternError{Pattern: p, Pos: i, Char: ops[i]}
		}
	}
	return n, nil
}

// ApplyPattern replays p against candidate. ok is false when candidate does
// not conform to p (wrong length, or a deleted character differs); this is
// the normal outcome for most candidate/pattern pairs. A non-nil error means
// p itself is corrupt.
func ApplyPattern(candidate string, p Pattern) (target string, ok bool, err error) {
	want, err := p.SourceLen()
	if err != nil {
		return "", false, err
	}
	src := []rune(candidate)
	if len(src) != want {
		return "", false, nil
	}

	ops := []rune(string(p))
	var sb strings.Builder
	pos := 0
	for i := 0; i < len(ops); i++ {
		switch ops[i] {
		case opEqual:
			sb.WriteRune(src[pos])
			pos++
		case opDelete:
			i++
			if src[pos] != ops[i] {
				return "", false, nil
			}
			pos++
		case opInsert:
			i++
			sb.WriteRune(ops[i])
		}
	}
	return sb.String(), true, nil
}
