package samples

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopping-samples/internal/config"
	"shopping-samples/internal/errors"
)

func TestAccountStatusesGet(t *testing.T) {
	api := newFakeAPI(t)
	api.reply(http.MethodGet, "1/accountstatuses/1", http.StatusOK, obj{
		"accountId": "1",
		"accountLevelIssues": arr{
			obj{"id": "editorial", "title": "Policy violation", "severity": "critical"},
		},
		"products": arr{obj{
			"channel":     "online",
			"destination": "Shopping",
			"country":     "US",
			"itemLevelIssues": arr{
				obj{"code": "missing_gtin", "description": "Missing GTIN", "numItems": "3"},
			},
		}},
	})
	env, out := api.env(&config.MerchantInfo{MerchantID: 1})

	require.NoError(t, accountStatusesGet(context.Background(), env, nil))

	assert.Equal(t, "Account 1:\n"+
		"- Found 1 account-level issues:\n"+
		"  - (critical) [editorial] Policy violation\n"+
		"- Item-level issues for Shopping/online in US:\n"+
		"  - [missing_gtin] \"Missing GTIN\" affecting 3 items\n", out.String())
}

func TestAccountStatusesGetForeignAccount(t *testing.T) {
	api := newFakeAPI(t)
	env, _ := api.env(&config.MerchantInfo{MerchantID: 1})

	err := accountStatusesGet(context.Background(), env, []string{"9"})

	assert.True(t, errors.IsPrecondition(err))
	assert.EqualError(t, err, "Non-multi-client accounts can only get their own information.")
}

func TestAccountStatusesGetSubAccount(t *testing.T) {
	api := newFakeAPI(t)
	api.reply(http.MethodGet, "1/accountstatuses/9", http.StatusOK, obj{"accountId": "9"})
	env, out := api.env(&config.MerchantInfo{MerchantID: 1, IsMCA: true})

	require.NoError(t, accountStatusesGet(context.Background(), env, []string{"9"}))

	assert.Equal(t, "Account 9:\n- No account-level issues.\n", out.String())
}

func TestAccountStatusesWorkflowFollowsPages(t *testing.T) {
	api := newFakeAPI(t)
	api.reply(http.MethodGet, "1/accountstatuses/1", http.StatusOK, obj{"accountId": "1"})
	api.handle(http.MethodGet, "1/accountstatuses", func(r *http.Request, _ map[string]interface{}) (int, interface{}) {
		if r.URL.Query().Get("pageToken") == "" {
			return http.StatusOK, obj{"resources": arr{obj{"accountId": "2"}}, "nextPageToken": "p2"}
		}
		return http.StatusOK, page(obj{"accountId": "3"})
	})
	env, out := api.env(&config.MerchantInfo{MerchantID: 1, IsMCA: true})

	require.NoError(t, accountStatusesWorkflow(context.Background(), env, nil))

	assert.Len(t, api.calls(http.MethodGet, "1/accountstatuses"), 2)
	assert.Equal(t, "Performing the Accountstatuses workflow.\n\n"+
		"Status of account 1:\n{\n  \"accountId\": \"1\"\n}\n\n"+
		"Printing status of all sub-accounts:\n"+
		"{\n  \"accountId\": \"2\"\n}\n"+
		"{\n  \"accountId\": \"3\"\n}\n"+
		"Status for 2 accounts printed.\n"+
		"Done with Accountstatuses workflow.\n", out.String())
}

func TestAccountStatusesList(t *testing.T) {
	api := newFakeAPI(t)
	api.reply(http.MethodGet, "1/accountstatuses", http.StatusOK, page(obj{
		"accountId": "2",
		"products": arr{obj{
			"itemLevelIssues": arr{obj{"code": "c1", "detail": "Fix it", "numItems": "4"}},
		}},
	}))
	env, out := api.env(&config.MerchantInfo{MerchantID: 1, IsMCA: true})

	require.NoError(t, accountStatusesList(context.Background(), env, nil))

	assert.Equal(t, "Account 2:\n"+
		"  - Issue: [c1] \"Fix it\" affecting 4 items\n"+
		"Total num of data quality issues: 1\n", out.String())
}
