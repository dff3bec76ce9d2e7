package autodiff

import "fmt"

// Seed pairs a variable name with the seed its derivative starts from.
type Seed struct {
	Name string
	Seed Expr
}

// Gradients differentiates e once per seed, each with its own seed, and
// returns the derivative expressions keyed by name.
//
// Seeds sharing the same seed expression are differentiated in one pass.
// Duplicate names and empty seeds are rejected.
//
// Example:
//
//	dy := autodiff.Matrix(residual)
//	grads, _ := autodiff.Gradients(y, autodiff.Seed{"w", dy}, autodiff.Seed{"b", dy})
//	dw := grads["w"]
func Gradients(e Expr, seeds ...Seed) (map[string]Expr, error) {
	grads := make(map[string]Expr, len(seeds))

	// Group names by seed node so shared seeds cost a single traversal.
	type group struct {
		seed  Expr
		names []string
	}
	var groups []*group
	for _, s := range seeds {
		if s.Seed.node == nil {
			return nil, fmt.Errorf("autodiff: empty seed for %q", s.Name)
		}
		if _, dup := grads[s.Name]; dup {
			return nil, fmt.Errorf("autodiff: duplicate seed for %q", s.Name)
		}
		grads[s.Name] = Expr{}

		var g *group
		for _, existing := range groups {
			if existing.seed.node == s.Seed.node {
				g = existing
				break
			}
		}
		if g == nil {
			g = &group{seed: s.Seed}
			groups = append(groups, g)
		}
		g.names = append(g.names, s.Name)
	}

	for _, g := range groups {
		for i, d := range e.Derivative(g.names, g.seed) {
			grads[g.names[i]] = d
		}
	}
	return grads, nil
}
