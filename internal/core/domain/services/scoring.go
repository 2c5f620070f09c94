package services

import (
	"encoding/json"

	"fulfillment/internal/pkg/errs"
)

// Per-gene verdict tags, reported in input order.
const (
	GeneValid   = "valid"
	GeneInvalid = "invalid"
)

// Gene acceptance bounds.
const (
	minGeneLength = 10
	maxGeneLength = 5000
	minGCRatio    = 0.25
	maxGCRatio    = 0.65
)

// ScoringResult is the outcome of scoring one submission.
type ScoringResult struct {
	// Valid reports whether the submission as a whole is acceptable:
	// every gene individually valid and no two genes identical.
	Valid bool

	// GeneResults tags each gene "valid" or "invalid" in input order.
	GeneResults []string

	// Units is the billable unit count: the sum of the lengths of all
	// genes in the submission, regardless of individual validity.
	Units int
}

// ScoringEngine validates and scores genomic submissions. It is a pure,
// deterministic domain service: no I/O, no persistence.
//
// A submission payload is a JSON array of gene strings. A gene is valid iff
// its length is within [10, 5000], every character is one of A, T, G, C,
// and its GC-content ratio lies strictly between 0.25 and 0.65. The
// submission is valid iff every gene is valid and no gene repeats
// (byte-exact, case-sensitive comparison).
type ScoringEngine struct{}

// NewScoringEngine creates a scoring engine.
func NewScoringEngine() ScoringEngine {
	return ScoringEngine{}
}

// Score decodes and scores a submission payload. A payload that cannot be
// decoded into a sequence of strings fails with MalformedSubmission before
// any scoring happens.
func (e ScoringEngine) Score(payload string) (ScoringResult, error) {
	var genes []string
	if err := json.Unmarshal([]byte(payload), &genes); err != nil {
		return ScoringResult{}, errs.NewMalformedSubmissionError(err)
	}

	return e.ScoreGenes(genes), nil
}

// ScoreGenes scores an already-decoded gene sequence.
func (e ScoringEngine) ScoreGenes(genes []string) ScoringResult {
	result := ScoringResult{
		Valid:       true,
		GeneResults: make([]string, 0, len(genes)),
	}

	seen := make(map[string]struct{}, len(genes))
	for _, gene := range genes {
		result.Units += len(gene)

		if _, dup := seen[gene]; dup {
			result.Valid = false
		}
		seen[gene] = struct{}{}

		if e.scoreGene(gene) {
			result.GeneResults = append(result.GeneResults, GeneValid)
		} else {
			result.GeneResults = append(result.GeneResults, GeneInvalid)
			result.Valid = false
		}
	}

	return result
}

// scoreGene applies the per-gene acceptance rule.
func (e ScoringEngine) scoreGene(gene string) bool {
	if len(gene) < minGeneLength || len(gene) > maxGeneLength {
		return false
	}

	gc := 0
	for i := 0; i < len(gene); i++ {
		switch gene[i] {
		case 'G', 'C':
			gc++
		case 'A', 'T':
		default:
			return false
		}
	}

	ratio := float64(gc) / float64(len(gene))
	return ratio > minGCRatio && ratio < maxGCRatio
}
