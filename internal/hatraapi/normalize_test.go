package hatraapi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hatra/internal/platform"
)

func TestDecodePageBareArray(t *testing.T) {
	body := []byte(`[{"_id":"t1","type":"deposit","amount":50},{"_id":"t2","type":"bonus","amount":5}]`)

	var items []platform.Transaction
	pagination, err := decodePage(body, &items)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, Pagination{Page: 1, Pages: 1, Total: 2}, pagination)
	assert.Equal(t, "t1", items[0].Id)
}

func TestDecodePageEnvelope(t *testing.T) {
	body := []byte(`{
		"data": [{"_id":"t3","type":"withdrawal","amount":40}],
		"pagination": {"page": 2, "pages": 7, "total": 61}
	}`)

	var items []platform.Transaction
	pagination, err := decodePage(body, &items)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, Pagination{Page: 2, Pages: 7, Total: 61}, pagination)
}

func TestDecodePageEnvelopeWithoutRows(t *testing.T) {
	var items []platform.Transaction
	pagination, err := decodePage([]byte(`{"message":"ok"}`), &items)
	assert.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, Pagination{Page: 1, Pages: 1, Total: 0}, pagination)
}

func TestDecodePageInvalidJson(t *testing.T) {
	var items []platform.Transaction
	_, err := decodePage([]byte(`{broken`), &items)
	assert.Error(t, err)
}

func TestDecodeReferralPageBareArrayTalliesLocally(t *testing.T) {
	body := []byte(`[
		{"_id":"r1","side":"left","referred":{"username":"a"}},
		{"_id":"r2","side":"left","referred":{"username":"b"}},
		{"_id":"r3","side":"right","referred":{"username":"c"}}
	]`)

	page, err := decodeReferralPage(body)
	assert.NoError(t, err)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, platform.TeamCounts{Left: 2, Right: 1}, page.TeamCounts)
	assert.True(t, page.CountsFromPage)
}

func TestDecodeReferralPageEnvelopeUsesServerCounts(t *testing.T) {
	body := []byte(`{
		"data": [{"_id":"r1","side":"left","referred":{"username":"a"}}],
		"pagination": {"page": 1, "pages": 3, "total": 25},
		"teamCounts": {"left": 14, "right": 11}
	}`)

	page, err := decodeReferralPage(body)
	assert.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, Pagination{Page: 1, Pages: 3, Total: 25}, page.Pagination)
	assert.Equal(t, platform.TeamCounts{Left: 14, Right: 11}, page.TeamCounts)
	assert.False(t, page.CountsFromPage)
}
