package store

import (
	"fmt"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/sampleset/errs"
	"github.com/arloliu/sampleset/sample"
)

type document struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description,omitempty"`
	Points      []point `yaml:"points"`
}

// point keeps raw YAML scalars so numbers written as strings still parse.
type point struct {
	X any `yaml:"x"`
	Y any `yaml:"y"`
}

func marshalSet(name string, set *sample.Set[float64, float64]) ([]byte, error) {
	doc := document{
		Name:   name,
		Points: make([]point, 0, set.Count()),
	}
	for _, s := range set.All() {
		doc.Points = append(doc.Points, point{X: s.X, Y: s.Y})
	}

	return yaml.Marshal(&doc)
}

func unmarshalSet(name string, data []byte) (*sample.Set[float64, float64], error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	if doc.Name != "" && doc.Name != name {
		return nil, fmt.Errorf("%w: document is named %q", errs.ErrInvalidSetName, doc.Name)
	}

	set, err := sample.New[float64, float64](sample.WithCapacity(len(doc.Points)))
	if err != nil {
		return nil, err
	}

	c := set.Cursor()
	for i, p := range doc.Points {
		if p.X == nil || p.Y == nil {
			return nil, fmt.Errorf("point %d: x and y are required", i)
		}

		x, err := cast.ToFloat64E(p.X)
		if err != nil {
			return nil, fmt.Errorf("point %d: x: %w", i, err)
		}
		y, err := cast.ToFloat64E(p.Y)
		if err != nil {
			return nil, fmt.Errorf("point %d: y: %w", i, err)
		}

		if !set.Domain().Valid(x) {
			return nil, fmt.Errorf("point %d: %w: x must be finite", i, errs.ErrInvalidParam)
		}
		c.Add(x, y)
	}

	return set, nil
}
