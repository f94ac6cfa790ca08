package syntax

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile holds the keyword sets of one language grammar.
// Keyword lists are injected configuration, not compiled-in rules,
// so grammars can be swapped without touching the scanner.
type Profile struct {
	Name      string   `yaml:"name"`
	Primary   []string `yaml:"primary"`
	Secondary []string `yaml:"secondary"`

	primary   map[string]struct{}
	secondary map[string]struct{}
}

// Default returns the built-in profile.
func Default() *Profile {
	p := &Profile{
		Name: "rust",
		Primary: []string{
			"as", "break", "const", "continue", "crate", "dyn", "else",
			"enum", "extern", "false", "fn", "for", "if", "impl", "in",
			"let", "loop", "match", "mod", "move", "mut", "pub", "ref",
			"return", "self", "Self", "static", "struct", "super", "trait",
			"true", "type", "unsafe", "use", "where", "while",
		},
		Secondary: []string{
			"bool", "char", "i8", "i16", "i32", "i64", "isize",
			"u8", "u16", "u32", "u64", "usize", "f32", "f64", "str",
		},
	}
	p.compile()
	return p
}

// LoadProfile reads a profile from a YAML file.
func LoadProfile(path string) (*Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	p := &Profile{}
	if err := yaml.Unmarshal(b, p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	if p.Name == "" {
		return nil, fmt.Errorf("profile %s: missing name", path)
	}
	p.compile()
	return p, nil
}

func (p *Profile) compile() {
	p.primary = make(map[string]struct{}, len(p.Primary))
	for _, w := range p.Primary {
		p.primary[w] = struct{}{}
	}
	p.secondary = make(map[string]struct{}, len(p.Secondary))
	for _, w := range p.Secondary {
		p.secondary[w] = struct{}{}
	}
}

func (p *Profile) IsPrimary(word string) bool {
	_, ok := p.primary[word]
	return ok
}

func (p *Profile) IsSecondary(word string) bool {
	_, ok := p.secondary[word]
	return ok
}
