package hatraapi

import (
	"encoding/json"

	"github.com/spyzhov/ajson"

	"hatra/internal/platform"
)

type Pagination struct {
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Total int `json:"total"`
}

func singlePage(total int) Pagination {
	return Pagination{Page: 1, Pages: 1, Total: total}
}

// decodePage absorbs the two historical response shapes of every listing
// endpoint: a bare JSON array, or an envelope {data, pagination}. items
// must be a pointer to a slice.
func decodePage(body []byte, items interface{}) (Pagination, error) {
	root, err := ajson.Unmarshal(body)
	if err != nil {
		return Pagination{}, err
	}
	if root.IsArray() {
		if err := json.Unmarshal(body, items); err != nil {
			return Pagination{}, err
		}
		return singlePage(root.Size()), nil
	}
	data, err := root.GetKey("data")
	if err != nil || !data.IsArray() {
		// envelope without rows, the UI treats it as an empty first page
		return singlePage(0), nil
	}
	if err := json.Unmarshal(data.Source(), items); err != nil {
		return Pagination{}, err
	}
	pagination := singlePage(data.Size())
	if node, err := root.GetKey("pagination"); err == nil {
		if err := json.Unmarshal(node.Source(), &pagination); err != nil {
			return Pagination{}, err
		}
	}
	return pagination, nil
}

// ReferralPage is the normalized referral listing. CountsFromPage marks
// team counts tallied from a single page of a legacy bare-array response;
// such counts undercount whenever more than one page exists and are not
// authoritative.
type ReferralPage struct {
	Items          []platform.Referral
	Pagination     Pagination
	TeamCounts     platform.TeamCounts
	CountsFromPage bool
}

func decodeReferralPage(body []byte) (ReferralPage, error) {
	page := ReferralPage{}
	root, err := ajson.Unmarshal(body)
	if err != nil {
		return page, err
	}
	if root.IsArray() {
		if err := json.Unmarshal(body, &page.Items); err != nil {
			return page, err
		}
		page.Pagination = singlePage(len(page.Items))
		for _, edge := range page.Items {
			switch edge.Side {
			case platform.SideLeft:
				page.TeamCounts.Left++
			case platform.SideRight:
				page.TeamCounts.Right++
			}
		}
		page.CountsFromPage = true
		return page, nil
	}
	page.Pagination, err = decodePage(body, &page.Items)
	if err != nil {
		return page, err
	}
	if node, err := root.GetKey("teamCounts"); err == nil {
		if err := json.Unmarshal(node.Source(), &page.TeamCounts); err != nil {
			return page, err
		}
	}
	return page, nil
}
