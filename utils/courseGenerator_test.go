package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeGeneratedPlan(t *testing.T) {
	content := `{"course_title":"Algebra in a Week","overview":"Seven days of algebra.","modules":[{"day":1,"title":"Numbers","lesson":"l","practice":"p","quiz":"q"}]}`

	plan, err := DecodeGeneratedPlan(content)
	require.NoError(t, err)
	assert.Equal(t, "Algebra in a Week", plan.CourseTitle)
	require.Len(t, plan.Modules, 1)
	assert.Equal(t, 1, plan.Modules[0].Day)
}

func TestDecodeGeneratedPlanStripsCodeFence(t *testing.T) {
	content := "```json\n{\"course_title\":\"T\",\"overview\":\"o\",\"modules\":[]}\n```"

	plan, err := DecodeGeneratedPlan(content)
	require.NoError(t, err)
	assert.Equal(t, "T", plan.CourseTitle)
}

func TestDecodeGeneratedPlanRejectsGarbage(t *testing.T) {
	for _, content := range []string{
		"Sure! Here is your course plan: day one covers numbers.",
		`{"course_title":"T","overview":"o","modules":[],"surprise":true}`,
		`{"overview":"no title","modules":[]}`,
		"",
	} {
		_, err := DecodeGeneratedPlan(content)
		assert.Error(t, err, "content %q", content)
	}
}
