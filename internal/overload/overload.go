// Package overload resolves a `call`/`callvirt` CallTarget to a concrete
// Method.
package overload

import (
	"strings"

	"github.com/charlie-sans/ObjectRuntime/internal/module"
	"github.com/charlie-sans/ObjectRuntime/internal/vmerrors"
)

// Kind distinguishes the two call opcodes, since `call` is restricted to
// static candidates and `callvirt` to instance candidates.
type Kind int

const (
	Static Kind = iota
	Virtual
)

// cacheKey amortizes resolution across loops, keyed by (class identity,
// method name, normalized signature).
type cacheKey struct {
	class     *module.Class
	name      string
	signature string
	kind      Kind
}

// Resolver resolves CallTargets against a ClassRegistry, caching results.
type Resolver struct {
	registry *module.ClassRegistry
	cache    map[cacheKey]*module.Method
}

// NewResolver creates a Resolver over registry.
func NewResolver(registry *module.ClassRegistry) *Resolver {
	return &Resolver{registry: registry, cache: make(map[cacheKey]*module.Method)}
}

// Resolve looks up target against registry and picks the best-matching
// candidate of the given Kind, caching the result.
func (r *Resolver) Resolve(target module.CallTarget, kind Kind) (*module.Method, error) {
	class, ok := r.registry.Lookup(target.DeclaringType)
	if !ok {
		return nil, vmerrors.ClassNotFoundError(target.DeclaringType)
	}

	signature := signatureKey(target.ParameterTypes)
	key := cacheKey{class: class, name: target.Name, signature: signature, kind: kind}
	if cached, ok := r.cache[key]; ok {
		return cached, nil
	}

	candidates := collectCandidates(class, target.Name, kind)
	if len(candidates) == 0 {
		return nil, vmerrors.MethodNotFoundError(class.QualifiedName(), target.Name)
	}

	method, err := pickCandidate(class, target, candidates)
	if err != nil {
		return nil, err
	}

	r.cache[key] = method
	return method, nil
}

// collectCandidates gathers every method named name across class and its
// ancestors, restricted to static/instance candidates per kind.
func collectCandidates(class *module.Class, name string, kind Kind) []*module.Method {
	var candidates []*module.Method
	for _, ancestor := range class.Ancestors() {
		for i := range ancestor.Methods {
			m := &ancestor.Methods[i]
			if !strings.EqualFold(m.Name, name) {
				continue
			}
			if kind == Static && !m.Static {
				continue
			}
			if kind == Virtual && m.Static {
				continue
			}
			candidates = append(candidates, m)
		}
	}
	return candidates
}

func pickCandidate(class *module.Class, target module.CallTarget, candidates []*module.Method) (*module.Method, error) {
	requested := signatureNames(target.ParameterTypes)

	// An empty ParameterTypes requires the name alone to be unique; a
	// caller hitting ambiguity here can disambiguate by supplying types.
	if len(requested) == 0 {
		if len(candidates) == 1 {
			return candidates[0], nil
		}
		return nil, vmerrors.AmbiguousOverloadExplainError(class.QualifiedName(), target.Name)
	}

	var exact []*module.Method
	for _, c := range candidates {
		if signatureMatches(requested, c.Signature()) {
			exact = append(exact, c)
		}
	}
	if len(exact) == 1 {
		return exact[0], nil
	}
	if len(exact) > 1 {
		return nil, vmerrors.AmbiguousOverloadError(class.QualifiedName(), target.Name)
	}

	// Fallback: unqualified request matching a candidate's simple-name
	// component.
	if !strings.Contains(target.Name, ".") {
		var suffixMatches []*module.Method
		for _, c := range candidates {
			if strings.EqualFold(c.Name, target.Name) {
				suffixMatches = append(suffixMatches, c)
			}
		}
		if len(suffixMatches) == 1 {
			return suffixMatches[0], nil
		}
	}

	// Legacy compatibility: if no exact match and exactly one candidate
	// shares the arity, pick it.
	var sameArity []*module.Method
	for _, c := range candidates {
		if len(c.Parameters) == len(requested) {
			sameArity = append(sameArity, c)
		}
	}
	if len(sameArity) == 1 {
		return sameArity[0], nil
	}

	return nil, vmerrors.NoMatchingOverloadError(class.QualifiedName(), target.Name, strings.Join(requested, ","))
}

func signatureMatches(requested, declared []string) bool {
	if len(requested) != len(declared) {
		return false
	}
	for i := range requested {
		if requested[i] != declared[i] {
			return false
		}
	}
	return true
}

func signatureNames(types []module.TypeReference) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return names
}

func signatureKey(types []module.TypeReference) string {
	return strings.Join(signatureNames(types), ",")
}
