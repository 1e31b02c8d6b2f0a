package factcheck

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptimizeReturnsKeywordQuery(t *testing.T) {
	ai := &fakeAI{optimizeOut: "moon landing 1969 staged hoax\n"}
	o := NewOptimizer(ai)

	query := o.Optimize(context.Background(), "The moon landing in 1969 was staged.")
	assert.Equal(t, "moon landing 1969 staged hoax", query)
}

func TestOptimizeStripsQuotes(t *testing.T) {
	ai := &fakeAI{optimizeOut: `"moon landing" 'staged' hoax`}
	o := NewOptimizer(ai)

	query := o.Optimize(context.Background(), "The moon landing in 1969 was staged.")
	assert.Equal(t, "moon landing staged hoax", query)
}

func TestOptimizeFallsBackToClaimOnError(t *testing.T) {
	claim := "The moon landing in 1969 was staged."
	ai := &fakeAI{optimizeErr: errors.New("rate limited")}
	o := NewOptimizer(ai)

	query := o.Optimize(context.Background(), claim)
	assert.Equal(t, claim, query, "fallback must return the claim byte-for-byte")
}

func TestOptimizeFallsBackToClaimOnEmptyOutput(t *testing.T) {
	claim := "The moon landing in 1969 was staged."
	ai := &fakeAI{optimizeOut: "  \n"}
	o := NewOptimizer(ai)

	query := o.Optimize(context.Background(), claim)
	assert.Equal(t, claim, query)
}
