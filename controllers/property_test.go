package controllers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildPropertySearchFilterEmpty(t *testing.T) {
	filter := buildPropertySearchFilter(url.Values{})
	assert.Equal(t, bson.M{}, filter)
}

func TestBuildPropertySearchFilterTitleWords(t *testing.T) {
	q := url.Values{"title": {"blue lake"}}
	filter := buildPropertySearchFilter(q)

	and, ok := filter["$and"].([]bson.M)
	require.True(t, ok)
	require.Len(t, and, 1)

	or, ok := and[0]["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)

	first := or[0].(bson.M)["title"].(bson.M)["$regex"].(primitive.Regex)
	second := or[1].(bson.M)["title"].(bson.M)["$regex"].(primitive.Regex)
	assert.Equal(t, "blue", first.Pattern)
	assert.Equal(t, "lake", second.Pattern)
	assert.Equal(t, "i", first.Options)
	assert.Equal(t, "i", second.Options)
}

func TestBuildPropertySearchFilterMaxPrice(t *testing.T) {
	q := url.Values{"maxPrice": {"500000"}}
	filter := buildPropertySearchFilter(q)

	and := filter["$and"].([]bson.M)
	require.Len(t, and, 1)
	assert.Equal(t, bson.M{"price": bson.M{"$lte": 500000.0}}, and[0])
}

func TestBuildPropertySearchFilterInvalidMaxPriceIgnored(t *testing.T) {
	q := url.Values{"maxPrice": {"cheap"}}
	filter := buildPropertySearchFilter(q)
	assert.Equal(t, bson.M{}, filter)
}

func TestBuildPropertySearchFilterConjunction(t *testing.T) {
	q := url.Values{
		"title":    {"villa"},
		"location": {"dhaka"},
		"category": {"apartment"},
		"maxPrice": {"250000"},
	}
	filter := buildPropertySearchFilter(q)

	and := filter["$and"].([]bson.M)
	assert.Len(t, and, 4)
}

func TestSearchCacheKeyStableUnderReordering(t *testing.T) {
	a, _ := url.ParseQuery("title=lake&maxPrice=100&location=dhaka")
	b, _ := url.ParseQuery("location=dhaka&title=lake&maxPrice=100")
	assert.Equal(t, searchCacheKey(a), searchCacheKey(b))
}

func TestSearchCacheKeyDistinguishesQueries(t *testing.T) {
	a, _ := url.ParseQuery("title=lake")
	b, _ := url.ParseQuery("title=river")
	assert.NotEqual(t, searchCacheKey(a), searchCacheKey(b))
}
