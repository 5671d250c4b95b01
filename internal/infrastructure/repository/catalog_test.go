package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogFindByID(t *testing.T) {
	catalog := NewCourseCatalog()

	course, ok := catalog.FindByID("ms-fabric")
	require.True(t, ok)
	assert.Equal(t, "Microsoft Fabric Elite", course.Title)
	assert.Equal(t, 5999, course.Price)
	assert.False(t, course.Free)

	_, ok = catalog.FindByID("no-such-course")
	assert.False(t, ok)
}

func TestCatalogAllKeepsDeclarationOrder(t *testing.T) {
	catalog := NewCourseCatalog()

	all := catalog.All()
	require.Len(t, all, 6)
	assert.Equal(t, "pbi-sql", all[0].ID)
	assert.Equal(t, "math-research", all[5].ID)
}

func TestCatalogIsNotMutableThroughReturns(t *testing.T) {
	catalog := NewCourseCatalog()

	all := catalog.All()
	all[0].Title = "hijacked"
	all[0].Modules[0] = "hijacked module"

	course, ok := catalog.FindByID("pbi-sql")
	require.True(t, ok)
	assert.Equal(t, "Power BI & SQL Excellence", course.Title)
	assert.Equal(t, "SQL Advanced Joins", course.Modules[0])

	course.Price = 1
	again, ok := catalog.FindByID("pbi-sql")
	require.True(t, ok)
	assert.Equal(t, 4999, again.Price)
}

func TestCatalogInvariants(t *testing.T) {
	catalog := NewCourseCatalog()

	seen := map[string]bool{}
	freeCount := 0
	for _, course := range catalog.All() {
		assert.False(t, seen[course.ID], "duplicate id %s", course.ID)
		seen[course.ID] = true

		assert.GreaterOrEqual(t, course.Price, 0)
		if course.Free {
			freeCount++
			assert.Zero(t, course.Price)
		}
		assert.NotEmpty(t, course.Modules)
	}
	assert.Equal(t, 1, freeCount)
}
