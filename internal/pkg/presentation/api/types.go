package api

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/propertyops/property-alerts/pkg/types"
)

type meta struct {
	TotalRecords uint64  `json:"totalRecords"`
	Offset       *uint64 `json:"offset,omitempty"`
	Limit        *uint64 `json:"limit,omitempty"`
	Count        uint64  `json:"count"`
}

type links struct {
	Self  *string `json:"self,omitempty"`
	First *string `json:"first,omitempty"`
	Prev  *string `json:"prev,omitempty"`
	Next  *string `json:"next,omitempty"`
	Last  *string `json:"last,omitempty"`
}

type ApiResponse struct {
	Meta  *meta  `json:"meta,omitempty"`
	Data  any    `json:"data"`
	Links *links `json:"links,omitempty"`
}

func (r ApiResponse) Byte() []byte {
	b, _ := json.Marshal(r)
	return b
}

func newAlertsResponse(path string, query url.Values, collection types.Collection[types.Alert]) ApiResponse {
	response := ApiResponse{
		Meta: &meta{
			TotalRecords: collection.TotalCount,
			Offset:       &collection.Offset,
			Limit:        &collection.Limit,
			Count:        collection.Count,
		},
		Data: collection.Data,
	}

	response.Links = createLinks(path, query, response.Meta)

	return response
}

func createLinks(path string, query url.Values, m *meta) *links {
	if m == nil || m.Offset == nil || m.Limit == nil || *m.Limit == 0 {
		return nil
	}

	offset := *m.Offset
	limit := *m.Limit

	newUrl := func(o uint64) *string {
		q := url.Values{}
		for k, v := range query {
			q[k] = v
		}
		q.Set("offset", fmt.Sprintf("%d", o))
		q.Set("limit", fmt.Sprintf("%d", limit))
		u := path + "?" + q.Encode()
		return &u
	}

	link := &links{
		Self:  newUrl(offset),
		First: newUrl(0),
	}

	if offset >= limit {
		link.Prev = newUrl(offset - limit)
	}

	if offset+limit < m.TotalRecords {
		link.Next = newUrl(offset + limit)
	}

	if m.TotalRecords > limit {
		link.Last = newUrl(((m.TotalRecords - 1) / limit) * limit)
	}

	return link
}
