package controllers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildUserFilter(t *testing.T) {
	q := url.Values{
		"status":     {"active"},
		"bloodGroup": {"A+"},
		"district":   {"Dhaka"},
		"page":       {"2"},
		"limit":      {"10"},
	}
	filter := buildUserFilter(q)
	assert.Equal(t, bson.M{
		"status":     "active",
		"bloodGroup": "A+",
		"district":   "Dhaka",
	}, filter)
}

func TestBuildUserFilterEmpty(t *testing.T) {
	assert.Equal(t, bson.M{}, buildUserFilter(url.Values{}))
}

func TestBuildRequestFilter(t *testing.T) {
	q := url.Values{"email": {"a@x.com"}, "status": {"pending"}}
	filter := buildRequestFilter(q)
	assert.Equal(t, bson.M{
		"requesterEmail": "a@x.com",
		"status":         "pending",
	}, filter)
}

func TestBuildRequestFilterIgnoresBlank(t *testing.T) {
	q := url.Values{"email": {"  "}, "status": {""}}
	assert.Equal(t, bson.M{}, buildRequestFilter(q))
}

func TestRedactPasswords(t *testing.T) {
	docs := []bson.M{
		{"email": "a@x.com", "password": "hash"},
		{"email": "b@x.com"},
	}
	redactPasswords(docs)
	assert.NotContains(t, docs[0], "password")
	assert.Equal(t, "a@x.com", docs[0]["email"])
}
