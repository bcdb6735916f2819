package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidateQueryAllCategories(t *testing.T) {
	query, args := candidateQuery([]int{4, 9}, 0)

	assert.Equal(t,
		"SELECT id, question, answer, category, difficulty FROM questions WHERE NOT (id = ANY($1)) ORDER BY id",
		query)
	assert.Equal(t, []any{[]int32{4, 9}}, args)
}

func TestCandidateQueryWithCategory(t *testing.T) {
	query, args := candidateQuery([]int{1}, 3)

	assert.Equal(t,
		"SELECT id, question, answer, category, difficulty FROM questions WHERE NOT (id = ANY($1)) AND category = $2 ORDER BY id",
		query)
	assert.Equal(t, []any{[]int32{1}, 3}, args)
}

func TestCandidateQueryEmptyExclusion(t *testing.T) {
	// First quiz round: nothing excluded, every row must qualify.
	query, args := candidateQuery(nil, 0)

	assert.Contains(t, query, "NOT (id = ANY($1))")
	assert.Equal(t, []any{[]int32{}}, args)
}
