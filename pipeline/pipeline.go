// Package pipeline compiles YAML-declared operator chains into enumerable
// sequences. It covers the declarative use case — pipelines with constant
// arguments only — without evaluating any source text: a step names an
// operator and carries plain scalar arguments, and Compile turns the list
// into a function over sequences.
//
// Unknown operators and malformed steps fail at Compile time; applying a
// compiled pipeline never fails by construction (failures surface when the
// resulting sequence is consumed, like any other operator chain).
package pipeline

import (
	"fmt"

	"gopkg.in/yaml.v3"

	enumerable "github.com/yaorb/node-enumerable"
)

// Step is one declarative operator application.
type Step struct {
	Op    string `yaml:"op"`
	Field string `yaml:"field,omitempty"` // key into object elements; empty means the element itself
	Cmp   string `yaml:"cmp,omitempty"`   // where: eq, ne, lt, le, gt, ge
	Value any    `yaml:"value,omitempty"` // where comparand
	N     int    `yaml:"n,omitempty"`     // skip/take/chunk/skipLast count
	Dir   string `yaml:"dir,omitempty"`   // orderBy: asc (default) or desc
	Type  string `yaml:"type,omitempty"`  // cast target
}

// Spec is a parsed pipeline document.
type Spec struct {
	Steps []Step `yaml:"steps"`
}

// Load decodes a YAML pipeline document.
func Load(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	return &spec, nil
}

// Pipeline is a compiled chain of operator applications.
type Pipeline struct {
	stages []func(*enumerable.Sequence) *enumerable.Sequence
}

// Apply chains every stage onto s. The result is as lazy as any other
// operator chain.
func (p *Pipeline) Apply(s *enumerable.Sequence) *enumerable.Sequence {
	for _, stage := range p.stages {
		s = stage(s)
	}
	return s
}

// Compile validates the spec and builds the operator chain.
func Compile(spec *Spec) (*Pipeline, error) {
	p := &Pipeline{}
	for i, step := range spec.Steps {
		stage, err := compileStep(step)
		if err != nil {
			return nil, fmt.Errorf("pipeline: step %d (%s): %w", i, step.Op, err)
		}
		p.stages = append(p.stages, stage)
	}
	return p, nil
}

func compileStep(step Step) (func(*enumerable.Sequence) *enumerable.Sequence, error) {
	switch step.Op {
	case "where":
		pred, err := wherePredicate(step)
		if err != nil {
			return nil, err
		}
		return func(s *enumerable.Sequence) *enumerable.Sequence {
			return s.Where(pred)
		}, nil
	case "select":
		field := step.Field
		if field == "" {
			return nil, fmt.Errorf("select requires a field")
		}
		return func(s *enumerable.Sequence) *enumerable.Sequence {
			return s.Select(fieldSelector(field))
		}, nil
	case "skip":
		n := step.N
		return func(s *enumerable.Sequence) *enumerable.Sequence { return s.Skip(n) }, nil
	case "take":
		n := step.N
		return func(s *enumerable.Sequence) *enumerable.Sequence { return s.Take(n) }, nil
	case "skipLast":
		n := step.N
		return func(s *enumerable.Sequence) *enumerable.Sequence { return s.SkipLast(n) }, nil
	case "distinct":
		return func(s *enumerable.Sequence) *enumerable.Sequence { return s.Distinct() }, nil
	case "reverse":
		return func(s *enumerable.Sequence) *enumerable.Sequence { return s.Reverse() }, nil
	case "chunk":
		n := step.N
		return func(s *enumerable.Sequence) *enumerable.Sequence { return s.Chunk(n) }, nil
	case "flatten":
		return func(s *enumerable.Sequence) *enumerable.Sequence { return s.Flatten() }, nil
	case "cast":
		if step.Type == "" {
			return nil, fmt.Errorf("cast requires a type")
		}
		t := step.Type
		return func(s *enumerable.Sequence) *enumerable.Sequence { return s.Cast(t) }, nil
	case "orderBy":
		sel := fieldSelector(step.Field)
		desc := step.Dir == "desc"
		if step.Dir != "" && step.Dir != "asc" && step.Dir != "desc" {
			return nil, fmt.Errorf("dir must be asc or desc, got %q", step.Dir)
		}
		return func(s *enumerable.Sequence) *enumerable.Sequence {
			if desc {
				return s.OrderByDescending(sel).Sequence
			}
			return s.OrderBy(sel).Sequence
		}, nil
	case "abs":
		return mathStage((*enumerable.Sequence).Abs), nil
	case "ceil":
		return mathStage((*enumerable.Sequence).Ceil), nil
	case "floor":
		return mathStage((*enumerable.Sequence).Floor), nil
	case "round":
		return mathStage((*enumerable.Sequence).Round), nil
	case "sqrt":
		return mathStage((*enumerable.Sequence).Sqrt), nil
	case "":
		return nil, fmt.Errorf("missing op")
	default:
		return nil, fmt.Errorf("unknown op")
	}
}

func mathStage(op func(*enumerable.Sequence, ...bool) *enumerable.Sequence) func(*enumerable.Sequence) *enumerable.Sequence {
	return func(s *enumerable.Sequence) *enumerable.Sequence { return op(s) }
}

// fieldSelector projects object elements to the named field; a missing
// field or non-object element projects to null. An empty name is the
// identity.
func fieldSelector(field string) enumerable.Selector {
	if field == "" {
		return nil
	}
	return func(v enumerable.Value) enumerable.Value {
		if v.Tag != enumerable.VTObject {
			return enumerable.Null
		}
		m := v.Data.(map[string]enumerable.Value)
		fv, ok := m[field]
		if !ok {
			return enumerable.Null
		}
		return fv
	}
}

func wherePredicate(step Step) (enumerable.Predicate, error) {
	sel := fieldSelector(step.Field)
	comparand := enumerable.FromGo(step.Value)
	cmpName := step.Cmp
	if cmpName == "" {
		cmpName = "eq"
	}
	switch cmpName {
	case "eq", "ne", "lt", "le", "gt", "ge":
	default:
		return nil, fmt.Errorf("unknown cmp %q", cmpName)
	}
	return func(v enumerable.Value) bool {
		if sel != nil {
			v = sel(v)
		}
		switch cmpName {
		case "eq":
			return enumerable.DefaultEquality(v, comparand)
		case "ne":
			return !enumerable.DefaultEquality(v, comparand)
		}
		c := enumerable.DefaultComparer(v, comparand)
		switch cmpName {
		case "lt":
			return c < 0
		case "le":
			return c <= 0
		case "gt":
			return c > 0
		default:
			return c >= 0
		}
	}, nil
}
