package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"e-disposisi/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed disposisi.yaml
var defaultVocabulary []byte

// Vocabulary is the controlled list of instructions and the valid jabatan of
// every tier.
type Vocabulary struct {
	Instruksi []string                `yaml:"instruksi" json:"instruksi"`
	Jabatan   map[model.Tier][]string `yaml:"jabatan" json:"jabatan"`

	tierOf map[string]model.Tier
}

func ParseVocabularyYAML(data []byte) (*Vocabulary, error) {
	var v Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse vocabulary yaml: %w", err)
	}
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// LoadVocabulary reads DISPOSISI_VOCAB when set and falls back to the
// embedded default.
func LoadVocabulary() (*Vocabulary, error) {
	path := GetEnv("DISPOSISI_VOCAB", "")
	if path == "" {
		return ParseVocabularyYAML(defaultVocabulary)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary %s: %w", path, err)
	}
	return ParseVocabularyYAML(data)
}

func (v *Vocabulary) validate() error {
	instruksi := v.Instruksi[:0]
	for _, s := range v.Instruksi {
		if s = strings.TrimSpace(s); s != "" {
			instruksi = append(instruksi, s)
		}
	}
	v.Instruksi = instruksi
	if len(v.Instruksi) == 0 {
		return fmt.Errorf("vocabulary: instruksi must not be empty")
	}

	v.tierOf = make(map[string]model.Tier)
	for tier := range v.Jabatan {
		if !tier.Valid() {
			return fmt.Errorf("vocabulary: unknown tier %q", tier)
		}
	}
	for _, tier := range model.Tiers() {
		titles := v.Jabatan[tier]
		if len(titles) == 0 {
			return fmt.Errorf("vocabulary: tier %q has no jabatan", tier)
		}
		for i, j := range titles {
			j = strings.TrimSpace(j)
			if j == "" {
				return fmt.Errorf("vocabulary: empty jabatan under tier %q", tier)
			}
			if other, dup := v.tierOf[j]; dup {
				return fmt.Errorf("vocabulary: jabatan %q listed under %q and %q", j, other, tier)
			}
			titles[i] = j
			v.tierOf[j] = tier
		}
	}
	return nil
}

func (v *Vocabulary) TitlesFor(t model.Tier) []string {
	out := make([]string, len(v.Jabatan[t]))
	copy(out, v.Jabatan[t])
	return out
}

// TierOfJabatan reports the tier a jabatan belongs to.
func (v *Vocabulary) TierOfJabatan(jabatan string) (model.Tier, bool) {
	t, ok := v.tierOf[jabatan]
	return t, ok
}

func (v *Vocabulary) ValidInstruksi(s string) bool {
	for _, i := range v.Instruksi {
		if i == s {
			return true
		}
	}
	return false
}
