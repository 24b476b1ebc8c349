// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package classifier

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/goccy/go-json"
)

// activationThreshold is the mean probability a label must exceed to be active.
const activationThreshold = 0.5

const leafChild = -1

// Model maps a feature vector to one indicator per label, in label order.
type Model interface {
	Predict(features []float64) ([]bool, error)
}

// Node is one decision-tree node in the persisted artifact.
type Node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

func (n *Node) isLeaf() bool {
	return n.Left == leafChild
}

// Tree is a binary decision tree rooted at Nodes[0].
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Estimator is the tree ensemble for one label.
type Estimator struct {
	Label string `json:"label"`
	Trees []Tree `json:"trees"`
}

// Artifact is the persisted forest.
type Artifact struct {
	Version    string      `json:"version"`
	Features   []string    `json:"features"`
	Labels     []string    `json:"labels"`
	Estimators []Estimator `json:"estimators"`
}

// ForestModel is a validated, immutable multi-output forest.
type ForestModel struct {
	version    string
	nFeatures  int
	estimators []Estimator
}

// LoadForest reads and validates an artifact from path.
func LoadForest(path string) (*ForestModel, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("open classifier artifact: %w", err)
	}
	defer f.Close()
	return ReadForest(f)
}

// ReadForest decodes and validates an artifact from r.
func ReadForest(r io.Reader) (*ForestModel, error) {
	var a Artifact
	if err := json.NewDecoder(r).Decode(&a); err != nil {
		return nil, fmt.Errorf("decode classifier artifact: %w", err)
	}
	return NewForest(&a)
}

// NewForest validates a against FeatureSchema and the label enumeration.
func NewForest(a *Artifact) (*ForestModel, error) {
	if !equalNames(a.Features, FeatureSchema) {
		return nil, fmt.Errorf("%w: artifact features %v, want %v", ErrSchemaMismatch, a.Features, FeatureSchema)
	}
	labels := LabelSchema()
	if !equalNames(a.Labels, labels) {
		return nil, fmt.Errorf("%w: artifact labels %v, want %v", ErrSchemaMismatch, a.Labels, labels)
	}
	if len(a.Estimators) != len(labels) {
		return nil, fmt.Errorf("artifact has %d estimators, want %d", len(a.Estimators), len(labels))
	}

	for i := range a.Estimators {
		est := &a.Estimators[i]
		if est.Label != labels[i] {
			return nil, fmt.Errorf("estimator %d is for %q, want %q", i, est.Label, labels[i])
		}
		if len(est.Trees) == 0 {
			return nil, fmt.Errorf("estimator %q has no trees", est.Label)
		}
		for j := range est.Trees {
			if err := validateTree(&est.Trees[j], len(FeatureSchema)); err != nil {
				return nil, fmt.Errorf("estimator %q tree %d: %w", est.Label, j, err)
			}
		}
	}

	return &ForestModel{
		version:    a.Version,
		nFeatures:  len(FeatureSchema),
		estimators: a.Estimators,
	}, nil
}

// validateTree checks index bounds. Children must follow their parent so
// traversal always terminates.
func validateTree(t *Tree, nFeatures int) error {
	if len(t.Nodes) == 0 {
		return fmt.Errorf("empty tree")
	}
	for i := range t.Nodes {
		n := &t.Nodes[i]
		if n.isLeaf() {
			if n.Right != leafChild {
				return fmt.Errorf("node %d: leaf with right child %d", i, n.Right)
			}
			if math.IsNaN(n.Value) || n.Value < 0 || n.Value > 1 {
				return fmt.Errorf("node %d: leaf probability %v outside [0,1]", i, n.Value)
			}
			continue
		}
		if n.Feature < 0 || n.Feature >= nFeatures {
			return fmt.Errorf("node %d: feature index %d out of range", i, n.Feature)
		}
		if math.IsNaN(n.Threshold) {
			return fmt.Errorf("node %d: NaN threshold", i)
		}
		for _, child := range [2]int{n.Left, n.Right} {
			if child <= i || child >= len(t.Nodes) {
				return fmt.Errorf("node %d: child index %d out of range", i, child)
			}
		}
	}
	return nil
}

// Version returns the artifact version string.
func (m *ForestModel) Version() string {
	return m.version
}

// Predict returns the active indicator for every label.
func (m *ForestModel) Predict(features []float64) ([]bool, error) {
	if len(features) != m.nFeatures {
		return nil, fmt.Errorf("%w: got %d features, want %d", ErrSchemaMismatch, len(features), m.nFeatures)
	}
	for i, v := range features {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: feature %s is not finite", ErrSchemaMismatch, FeatureSchema[i])
		}
	}

	out := make([]bool, len(m.estimators))
	for i := range m.estimators {
		out[i] = m.probability(i, features) > activationThreshold
	}
	return out, nil
}

func (m *ForestModel) probability(label int, x []float64) float64 {
	trees := m.estimators[label].Trees
	var sum float64
	for i := range trees {
		sum += leafValue(&trees[i], x)
	}
	return sum / float64(len(trees))
}

func leafValue(t *Tree, x []float64) float64 {
	idx := 0
	for {
		n := &t.Nodes[idx]
		if n.isLeaf() {
			return n.Value
		}
		if x[n.Feature] <= n.Threshold {
			idx = n.Left
		} else {
			idx = n.Right
		}
	}
}
