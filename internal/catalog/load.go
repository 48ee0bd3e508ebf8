package catalog

import (
	"fmt"
	"os"
	"sort"

	"github.com/pathfinderhq/pathfinder/internal/domain"
	"gopkg.in/yaml.v3"
)

// fileCatalog is the YAML schema for an external catalog file.
type fileCatalog struct {
	Attributes map[string]string `yaml:"attributes"`
	Careers    []fileCareer      `yaml:"careers"`
	Questions  []fileQuestion    `yaml:"questions"`
	Synonyms   *fileSynonyms     `yaml:"synonyms"`
}

type fileCareer struct {
	Name      string   `yaml:"name"`
	Required  []string `yaml:"required"`
	Preferred []string `yaml:"preferred"`
}

type fileQuestion struct {
	ID      string       `yaml:"id"`
	Prompt  string       `yaml:"prompt"`
	Options []fileOption `yaml:"options"`
}

type fileOption struct {
	Label     string `yaml:"label"`
	Attribute string `yaml:"attribute"`
}

type fileSynonyms struct {
	Affirmative []string                     `yaml:"affirmative"`
	Negative    []string                     `yaml:"negative"`
	MultiChoice map[string]map[string]string `yaml:"multi_choice"`
	YesHints    map[string][]string          `yaml:"yes_hints"`
}

// Load reads a catalog from a YAML file and validates it. Career and
// question order follow file order; attributes are sorted by ID since the
// YAML mapping carries no order.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var fc fileCatalog
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}

	attrs := make([]domain.Attribute, 0, len(fc.Attributes))
	for id, label := range fc.Attributes {
		attrs = append(attrs, domain.Attribute{ID: id, Label: label})
	}
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].ID < attrs[j].ID })

	careers := make([]domain.CareerProfile, 0, len(fc.Careers))
	for _, c := range fc.Careers {
		careers = append(careers, domain.CareerProfile{
			Name:      c.Name,
			Required:  c.Required,
			Preferred: c.Preferred,
		})
	}

	questions := make([]domain.Question, 0, len(fc.Questions))
	for _, q := range fc.Questions {
		opts := make([]domain.Option, 0, len(q.Options))
		for _, o := range q.Options {
			opts = append(opts, domain.Option{Label: o.Label, AttributeID: o.Attribute})
		}
		questions = append(questions, domain.Question{ID: q.ID, Prompt: q.Prompt, Options: opts})
	}

	syn := fileSynonymsToSynonyms(fc.Synonyms)

	cat := New(attrs, careers, questions, syn)
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("validating catalog %s: %w", path, err)
	}
	return cat, nil
}

// fileSynonymsToSynonyms converts the file section, falling back to the
// built-in generic yes/no vocabulary when the file does not provide one.
func fileSynonymsToSynonyms(fs *fileSynonyms) Synonyms {
	base := defaultSynonyms()
	if fs == nil {
		return Synonyms{Affirmative: base.Affirmative, Negative: base.Negative}
	}
	syn := Synonyms{
		Affirmative: fs.Affirmative,
		Negative:    fs.Negative,
		MultiChoice: fs.MultiChoice,
		YesHints:    fs.YesHints,
	}
	if len(syn.Affirmative) == 0 {
		syn.Affirmative = base.Affirmative
	}
	if len(syn.Negative) == 0 {
		syn.Negative = base.Negative
	}
	return syn
}

// LoadOrDefault loads the catalog at path, or returns the built-in catalog
// when path is empty.
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		cat := Default()
		if err := cat.Validate(); err != nil {
			return nil, fmt.Errorf("validating built-in catalog: %w", err)
		}
		return cat, nil
	}
	return Load(path)
}
