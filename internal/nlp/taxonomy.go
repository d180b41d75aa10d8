package nlp

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Category is one taxonomy entry: a name and its vocabulary of canonical
// terms. Membership is literal, not fuzzy or stemmed.
type Category struct {
	Name  string   `yaml:"name"`
	Terms []string `yaml:"terms"`
}

//go:embed taxonomy.yaml
var taxonomyYAML []byte

// taxonomy is the static category table, loaded once at startup, in
// declaration order. terms indexes each category's vocabulary for O(1)
// membership checks.
var (
	taxonomy = mustLoadTaxonomy(taxonomyYAML)
	terms    = indexTerms(taxonomy)
)

func mustLoadTaxonomy(data []byte) []Category {
	var out []Category
	if err := yaml.Unmarshal(data, &out); err != nil {
		panic(fmt.Sprintf("nlp: invalid taxonomy.yaml: %v", err))
	}
	if len(out) == 0 {
		panic("nlp: taxonomy.yaml declares no categories")
	}
	return out
}

func indexTerms(cats []Category) map[string]map[string]struct{} {
	idx := make(map[string]map[string]struct{}, len(cats))
	for _, c := range cats {
		set := make(map[string]struct{}, len(c.Terms))
		for _, t := range c.Terms {
			set[t] = struct{}{}
		}
		idx[c.Name] = set
	}
	return idx
}

// Categories returns the taxonomy in declaration order.
func Categories() []Category {
	out := make([]Category, len(taxonomy))
	copy(out, taxonomy)
	return out
}

// Categorize returns the category names whose vocabulary contains at
// least one of the given keywords, in taxonomy declaration order.
// Presence is binary: match count carries no weight. Empty input yields
// an empty result.
func Categorize(keywords []string) []string {
	var matched []string
	for _, c := range taxonomy {
		vocab := terms[c.Name]
		for _, kw := range keywords {
			if _, ok := vocab[kw]; ok {
				matched = append(matched, c.Name)
				break
			}
		}
	}
	return matched
}
