package syntax

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Highlighter assigns one Tag per grapheme of a line.
//
// The scan is line-local: string and comment state never carries across
// rows, so a block comment opened on one line and closed on a later one
// is not tagged correctly. Known limitation.
type Highlighter struct {
	profile *Profile
}

func NewHighlighter(p *Profile) *Highlighter {
	if p == nil {
		p = Default()
	}
	return &Highlighter{profile: p}
}

func (h *Highlighter) Profile() *Profile {
	return h.profile
}

// Scan tokenizes one line. The returned slice has exactly one Tag per
// grapheme of text.
func (h *Highlighter) Scan(text string) []Tag {
	gs := split(text)
	tags := make([]Tag, 0, len(gs))

	inString := false
	inComment := false

	i := 0
	for i < len(gs) {
		g := gs[i]

		if inComment {
			tags = append(tags, Comment)
			if g == "*" && i < len(gs)-1 && gs[i+1] == "/" {
				tags = append(tags, Comment)
				i += 2
				inComment = false
				continue
			}
			i++
			continue
		}

		if g == "/" && i < len(gs)-1 && gs[i+1] == "*" {
			tags = append(tags, Comment, Comment)
			i += 2
			inComment = true
			continue
		}

		if g == `"` {
			tags = append(tags, String)
			inString = !inString
			i++
			continue
		}

		if inString {
			tags = append(tags, String)
			i++
			continue
		}

		if g == "'" {
			// scan to the closing quote; an unterminated run takes the
			// rest of the line
			j := i + 1
			for j < len(gs) && gs[j] != "'" {
				j++
			}
			if j >= len(gs) {
				j = len(gs) - 1
			}
			for k := i; k <= j; k++ {
				tags = append(tags, CharLiteral)
			}
			i = j + 1
			continue
		}

		if isDigit(g) {
			prevSep := i == 0 || !isWordPart(gs[i-1])
			prevNum := len(tags) > 0 && tags[len(tags)-1] == Number
			if prevSep || prevNum {
				tags = append(tags, Number)
				i++
				continue
			}
		}

		if g == "/" && i < len(gs)-1 && gs[i+1] == "/" {
			for ; i < len(gs); i++ {
				tags = append(tags, Comment)
			}
			break
		}

		if word := wordAt(gs, i); word != "" {
			var tag Tag
			switch {
			case h.profile.IsPrimary(word):
				tag = KeywordPrimary
			case h.profile.IsSecondary(word):
				tag = KeywordSecondary
			}
			if tag != Normal {
				n := uniseg.GraphemeClusterCount(word)
				for k := 0; k < n; k++ {
					tags = append(tags, tag)
				}
				i += n
				continue
			}
		}

		tags = append(tags, Normal)
		i++
	}
	return tags
}

// wordAt returns the word starting exactly at index i, or "" when i is
// not the left boundary of an alphabetic word.
func wordAt(gs []string, i int) string {
	if i > 0 && isWordPart(gs[i-1]) {
		return ""
	}
	if !isAlpha(gs[i]) {
		return ""
	}
	word := ""
	for ; i < len(gs) && isWordPart(gs[i]); i++ {
		word += gs[i]
	}
	return word
}

func split(s string) []string {
	gs := make([]string, 0, len(s))
	state := -1
	for len(s) > 0 {
		var g string
		g, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		gs = append(gs, g)
	}
	return gs
}

func firstRune(g string) rune {
	r, _ := utf8.DecodeRuneInString(g)
	return r
}

func isDigit(g string) bool {
	r := firstRune(g)
	return r >= '0' && r <= '9'
}

func isAlpha(g string) bool {
	return unicode.IsLetter(firstRune(g))
}

func isWordPart(g string) bool {
	r := firstRune(g)
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
