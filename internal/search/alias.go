package search

import (
	"maps"
	"sort"
)

// AliasTable maps a normalized alias to the canonical skill name it stands for.
type AliasTable map[string]string

var DefaultAliases = AliasTable{
	"js":          "JavaScript",
	"ecmascript":  "JavaScript",
	"ts":          "TypeScript",
	"py":          "Python",
	"golang":      "Go",
	"node":        "Node.js",
	"nodejs":      "Node.js",
	"reactjs":     "React",
	"react.js":    "React",
	"vuejs":       "Vue",
	"vue.js":      "Vue",
	"k8s":         "Kubernetes",
	"postgres":    "PostgreSQL",
	"psql":        "PostgreSQL",
	"mongo":       "MongoDB",
	"ml":          "Machine Learning",
	"dl":          "Deep Learning",
	"nlp":         "Natural Language Processing",
	"ai":          "Artificial Intelligence",
	"sklearn":     "Scikit-learn",
	"tf":          "TensorFlow",
	"aws":         "Cloud Computing",
	"gcp":         "Cloud Computing",
	"azure":       "Cloud Computing",
	"stats":       "Statistics",
	"dsa":         "Algorithms",
	"html5":       "HTML",
	"css3":        "CSS",
	"rest":        "REST APIs",
	"restful":     "REST APIs",
	"ci/cd":       "DevOps",
	"dataviz":     "Data Visualization",
	"data viz":    "Data Visualization",
	"linux shell": "Linux",
	"bash":        "Linux",
}

// WithOverrides returns a copy of t with overrides applied on top.
// Keys are normalized and entries with an empty alias or canonical name are skipped.
func (t AliasTable) WithOverrides(overrides map[string]string) AliasTable {
	out := make(AliasTable, len(t)+len(overrides))
	maps.Copy(out, t)
	for alias, canonical := range overrides {
		key := NormalizeTerm(alias)
		if key == "" || NormalizeTerm(canonical) == "" {
			continue
		}
		out[key] = canonical
	}
	return out
}

func (t AliasTable) Canonical(alias string) (string, bool) {
	v, ok := t[NormalizeTerm(alias)]
	return v, ok
}

// Index groups aliases by the normalized canonical skill, each group sorted.
func (t AliasTable) Index() map[string][]string {
	idx := make(map[string][]string)
	for alias, canonical := range t {
		key := NormalizeTerm(canonical)
		idx[key] = append(idx[key], alias)
	}
	for k := range idx {
		sort.Strings(idx[k])
	}
	return idx
}
