package samples

import (
	"context"
	"sort"
	"strings"
)

// WorkflowsAlias names every workflow sample except the orders one.
const WorkflowsAlias = "workflows"

const workflowSuffix = ".workflow"

type Arg struct {
	Name     string
	Optional bool
	// Variadic arguments take every remaining value. Only the last argument
	// of a sample may be variadic.
	Variadic bool
}

// Sample is one runnable sample. Run receives exactly the values the Args
// declared: optional ones may be missing and a variadic one may repeat.
type Sample struct {
	Name string
	Args []Arg
	Run  func(ctx context.Context, env *Env, args []string) error
}

// Usage renders the sample name followed by its arguments.
func (s *Sample) Usage() string {
	parts := []string{s.Name}
	for _, a := range s.Args {
		switch {
		case a.Variadic:
			parts = append(parts, "<"+a.Name+">...")
		case a.Optional:
			parts = append(parts, "["+a.Name+"]")
		default:
			parts = append(parts, "<"+a.Name+">")
		}
	}
	return strings.Join(parts, " ")
}

func catalog() []*Sample {
	var all []*Sample
	for _, group := range [][]*Sample{
		accountSamples,
		accountStatusSamples,
		accountTaxSamples,
		datafeedSamples,
		inventorySamples,
		productSamples,
		productStatusSamples,
		shippingSettingsSamples,
		orderSamples,
		reportSamples,
	} {
		all = append(all, group...)
	}
	return all
}

var index = buildIndex()

func buildIndex() map[string]*Sample {
	idx := make(map[string]*Sample)
	for _, s := range catalog() {
		idx[s.Name] = s
	}
	return idx
}

func Lookup(name string) (*Sample, bool) {
	s, ok := index[name]
	return s, ok
}

// IsName reports whether name is a sample or the workflows alias.
func IsName(name string) bool {
	_, ok := index[name]
	return ok || name == WorkflowsAlias
}

// All returns every sample sorted by name.
func All() []*Sample {
	all := make([]*Sample, 0, len(index))
	for _, s := range index {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// Workflows returns the workflow samples run by default. The orders workflow
// needs a sandbox and is only run on request.
func Workflows() []*Sample {
	var out []*Sample
	for _, s := range All() {
		if strings.HasSuffix(s.Name, workflowSuffix) && s.Name != "orders"+workflowSuffix {
			out = append(out, s)
		}
	}
	return out
}
