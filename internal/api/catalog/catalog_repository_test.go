package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogInvariants(t *testing.T) {
	repo := NewInMemoryRepository()

	seen := make(map[string]bool)
	for _, p := range repo.AllPOIs() {
		assert.False(t, seen[p.ID], "duplicate POI id %q", p.ID)
		seen[p.ID] = true

		assert.NotEmpty(t, p.Tags, "POI %q must be reachable via tag search", p.ID)
		assert.NotEmpty(t, p.Name, p.ID)
		assert.NotEmpty(t, p.Category, p.ID)
		assert.True(t, p.HasCoordinates(), p.ID)
		assert.Greater(t, p.VisitDurationMin, 0, p.ID)
	}

	for _, rt := range repo.AllPresetRoutes() {
		for _, id := range rt.POIIDs {
			_, ok := repo.GetPOI(id)
			assert.True(t, ok, "route %q references unknown POI %q", rt.ID, id)
		}
	}
}

func TestGetPOIs_KeepsOrderAndSkipsUnknown(t *testing.T) {
	repo := NewInMemoryRepository()

	pois := repo.GetPOIs([]string{"tiantan", "nope", "gugong"})
	require.Len(t, pois, 2)
	assert.Equal(t, "tiantan", pois[0].ID)
	assert.Equal(t, "gugong", pois[1].ID)
}

func TestGetRoutePOIs(t *testing.T) {
	repo := NewInMemoryRepository()

	t.Run("hutong preset keeps fixed order", func(t *testing.T) {
		pois := repo.GetRoutePOIs("hutong")
		require.Len(t, pois, 3)
		assert.Equal(t, "nanluogu", pois[0].ID)
		assert.Equal(t, "shichahai", pois[1].ID)
		assert.Equal(t, "yandaixie", pois[2].ID)
	})

	t.Run("unknown route yields nothing", func(t *testing.T) {
		assert.Empty(t, repo.GetRoutePOIs("moon"))
	})
}

func TestSearchByTags(t *testing.T) {
	repo := NewInMemoryRepository()

	t.Run("ranked by match count", func(t *testing.T) {
		pois := repo.SearchByTags([]string{"history", "architecture", "imperial"}, 5)
		require.NotEmpty(t, pois)
		// gugong matches all three tags and must rank first.
		assert.Equal(t, "gugong", pois[0].ID)
		assert.LessOrEqual(t, len(pois), 5)
	})

	t.Run("no matches", func(t *testing.T) {
		assert.Empty(t, repo.SearchByTags([]string{"skiing"}, 5))
	})

	t.Run("deterministic", func(t *testing.T) {
		first := repo.SearchByTags([]string{"temple"}, 10)
		second := repo.SearchByTags([]string{"temple"}, 10)
		assert.Equal(t, first, second)
	})
}

func TestFirstPOIs(t *testing.T) {
	repo := NewInMemoryRepository()

	assert.Len(t, repo.FirstPOIs(3), 3)
	assert.Equal(t, "gugong", repo.FirstPOIs(1)[0].ID)
	assert.Len(t, repo.FirstPOIs(10000), len(repo.AllPOIs()))
}
