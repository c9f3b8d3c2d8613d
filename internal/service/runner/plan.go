package runner

import (
	"fmt"
	"io"

	"shopping-samples/internal/errors"
	"shopping-samples/internal/samples"
)

// Invocation is one sample together with the arguments given to it.
type Invocation struct {
	Sample *samples.Sample
	Args   []string
}

// NewPlan turns the positional command line arguments into the samples to
// run. Each name is followed by its arguments: optional ones are only taken
// when the next value is not itself a sample name, and a variadic one takes
// every remaining value. No arguments selects every default workflow.
func NewPlan(args []string) ([]Invocation, error) {
	if len(args) == 0 {
		return workflows(), nil
	}

	var plan []Invocation
	for i := 0; i < len(args); {
		name := args[i]
		i++
		if name == samples.WorkflowsAlias {
			plan = append(plan, workflows()...)
			continue
		}
		s, ok := samples.Lookup(name)
		if !ok {
			return nil, errors.NewResourceNotFound("sample", name)
		}

		inv := Invocation{Sample: s}
		for _, a := range s.Args {
			switch {
			case a.Variadic:
				if i == len(args) && !a.Optional {
					return nil, missingArg(s, a)
				}
				inv.Args = append(inv.Args, args[i:]...)
				i = len(args)
			case i < len(args) && (!a.Optional || !samples.IsName(args[i])):
				inv.Args = append(inv.Args, args[i])
				i++
			case !a.Optional:
				return nil, missingArg(s, a)
			}
		}
		plan = append(plan, inv)
	}
	return plan, nil
}

func missingArg(s *samples.Sample, a samples.Arg) error {
	return errors.NewBadRequest("Missing argument <%s> for %s. Usage: %s", a.Name, s.Name, s.Usage())
}

func workflows() []Invocation {
	var plan []Invocation
	for _, s := range samples.Workflows() {
		plan = append(plan, Invocation{Sample: s})
	}
	return plan
}

// PrintUsage lists every sample with its arguments.
func PrintUsage(w io.Writer) {
	fmt.Fprintf(w, "Possible samples:\n\n")
	for _, s := range samples.All() {
		fmt.Fprintf(w, "  * %s\n", s.Usage())
	}
	fmt.Fprintf(w, "  * %s (every workflow except orders.workflow)\n\n", samples.WorkflowsAlias)
}
