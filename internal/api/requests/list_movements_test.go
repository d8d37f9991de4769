package requests

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_NewListMovements(t *testing.T) {

	type tc struct {
		query    string
		err      bool
		kinds    []string
		pageSize uint64
		page     uint64
	}

	testCases := map[string]tc{
		"should default to first page of fifty": {
			query:    "",
			pageSize: defaultPageSize,
		},
		"should accept a single kind": {
			query:    "?kind=withdrawn",
			kinds:    []string{"withdrawn"},
			pageSize: defaultPageSize,
		},
		"should accept a kind list": {
			query:    "?kind=deposit_queued,deposit_committed",
			kinds:    []string{"deposit_queued", "deposit_committed"},
			pageSize: defaultPageSize,
		},
		"should reject an unknown kind": {
			query: "?kind=rebalanced",
			err:   true,
		},
		"should reject an unknown kind inside a list": {
			query: "?kind=withdrawn,rebalanced",
			err:   true,
		},
		"should accept paging params": {
			query:    "?page_size=10&page=3",
			pageSize: 10,
			page:     3,
		},
		"should reject zero page size": {
			query: "?page_size=0",
			err:   true,
		},
		"should reject page size over the cap": {
			query: "?page_size=501",
			err:   true,
		},
		"should reject a non-numeric page": {
			query: "?page=abc",
			err:   true,
		},
	}

	for name, test := range testCases {
		t.Run(name, func(t *testing.T) {
			selector, err := NewListMovements(httptest.NewRequest("GET", "/strategy/movements"+test.query, nil))
			if test.err {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, test.kinds, selector.Kinds)
			require.Equal(t, test.pageSize, selector.PageSize)
			require.Equal(t, test.page, selector.PageNumber)
		})
	}
}
