package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imadityagolu/mct-5-amazone/models"
)

func TestBundledCatalogLoads(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)
	require.NotEmpty(t, cat.Products())

	first, ok := cat.ByID(1)
	require.True(t, ok)
	assert.NotEmpty(t, first.Name)
	assert.NotZero(t, first.Price)
}

func TestByIDMissing(t *testing.T) {
	cat := NewFromProducts(nil)
	_, ok := cat.ByID(42)
	assert.False(t, ok)
}

func TestFiltersComposeWithAnd(t *testing.T) {
	cat := NewFromProducts([]models.Product{
		{ID: 1, Name: "Headphones", Type: "electronic", Price: 3000},
		{ID: 2, Name: "Camera", Type: "electronic", Price: 9000},
		{ID: 3, Name: "T-Shirt", Type: "featured", Price: 2000},
	})

	result := cat.Search(Query{Category: "electronic", PriceBand: PriceBandLow})
	require.Len(t, result, 1)
	assert.Equal(t, 1, result[0].ID)
}

func TestSearchMatchesNameOrCategoryCaseInsensitive(t *testing.T) {
	cat := NewFromProducts([]models.Product{
		{ID: 1, Name: "Wireless Headphones", Type: "electronic"},
		{ID: 2, Name: "Denim Jacket", Type: "featured"},
		{ID: 3, Name: "Electric Kettle", Type: "featured"},
	})

	byName := cat.Search(Query{Search: "HEADPHONES"})
	require.Len(t, byName, 1)
	assert.Equal(t, 1, byName[0].ID)

	// "electr" hits product 1 via its category and product 3 via its name.
	byEither := cat.Search(Query{Search: "electr"})
	require.Len(t, byEither, 2)
	assert.Equal(t, 1, byEither[0].ID)
	assert.Equal(t, 3, byEither[1].ID)
}

func TestPriceBandBoundariesAreInclusive(t *testing.T) {
	cat := NewFromProducts([]models.Product{
		{ID: 1, Price: 0},
		{ID: 2, Price: 5000},
		{ID: 3, Price: 5001},
		{ID: 4, Price: 10000},
		{ID: 5, Price: 10001},
		{ID: 6, Price: 99999},
	})

	ids := func(products []models.Product) []int {
		out := []int{}
		for _, p := range products {
			out = append(out, p.ID)
		}
		return out
	}

	assert.Equal(t, []int{1, 2}, ids(cat.Search(Query{PriceBand: PriceBandLow})))
	assert.Equal(t, []int{3, 4}, ids(cat.Search(Query{PriceBand: PriceBandMid})))
	assert.Equal(t, []int{5, 6}, ids(cat.Search(Query{PriceBand: PriceBandHigh})))
}

func TestSortPriceLowAscending(t *testing.T) {
	cat := NewFromProducts([]models.Product{
		{ID: 1, Price: 500},
		{ID: 2, Price: 100},
		{ID: 3, Price: 300},
	})

	result := cat.Search(Query{Sort: SortPriceLow})
	require.Len(t, result, 3)
	assert.Equal(t, float64(100), result[0].Price)
	assert.Equal(t, float64(300), result[1].Price)
	assert.Equal(t, float64(500), result[2].Price)
}

func TestSortPriceHighDescending(t *testing.T) {
	cat := NewFromProducts([]models.Product{
		{ID: 1, Price: 500},
		{ID: 2, Price: 100},
		{ID: 3, Price: 300},
	})

	result := cat.Search(Query{Sort: SortPriceHigh})
	require.Len(t, result, 3)
	assert.Equal(t, float64(500), result[0].Price)
	assert.Equal(t, float64(100), result[2].Price)
}

func TestSortPriceTiesKeepNaturalOrder(t *testing.T) {
	cat := NewFromProducts([]models.Product{
		{ID: 1, Price: 300},
		{ID: 2, Price: 100},
		{ID: 3, Price: 300},
	})

	result := cat.Search(Query{Sort: SortPriceLow})
	require.Len(t, result, 3)
	assert.Equal(t, 2, result[0].ID)
	assert.Equal(t, 1, result[1].ID)
	assert.Equal(t, 3, result[2].ID)
}

func TestSortByName(t *testing.T) {
	cat := NewFromProducts([]models.Product{
		{ID: 1, Name: "banana stand"},
		{ID: 2, Name: "Apple slicer"},
		{ID: 3, Name: "cherry pitter"},
	})

	result := cat.Search(Query{Sort: SortName})
	require.Len(t, result, 3)
	assert.Equal(t, "Apple slicer", result[0].Name)
	assert.Equal(t, "banana stand", result[1].Name)
	assert.Equal(t, "cherry pitter", result[2].Name)
}

func TestRelevanceKeepsNaturalOrder(t *testing.T) {
	products := []models.Product{
		{ID: 9, Price: 900},
		{ID: 1, Price: 100},
		{ID: 5, Price: 500},
	}
	cat := NewFromProducts(products)

	result := cat.Search(Query{Sort: SortRelevance})
	require.Len(t, result, 3)
	for i, p := range products {
		assert.Equal(t, p.ID, result[i].ID)
	}
}

func TestUnknownBandAppliesNoFilter(t *testing.T) {
	cat := NewFromProducts([]models.Product{
		{ID: 1, Price: 100},
		{ID: 2, Price: 99999},
	})

	result := cat.Search(Query{PriceBand: "everything"})
	assert.Len(t, result, 2)
}
