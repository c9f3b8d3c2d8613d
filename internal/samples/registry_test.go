package samples

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopping-samples/internal/config"
	"shopping-samples/internal/errors"
)

func TestUsage(t *testing.T) {
	tests := map[string]string{
		"accounts.delete_batch": "accounts.delete_batch <account_id>...",
		"accounttax.get":        "accounttax.get [account_id]",
		"products.get":          "products.get <product_id>",
		"orders.workflow":       "orders.workflow",
	}
	for name, want := range tests {
		s, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, want, s.Usage())
	}
}

func TestOnlyLastArgIsVariadic(t *testing.T) {
	for _, s := range All() {
		for i, a := range s.Args {
			if a.Variadic {
				assert.Equal(t, len(s.Args)-1, i, s.Name)
			}
		}
	}
}

func TestWorkflows(t *testing.T) {
	var names []string
	for _, s := range Workflows() {
		names = append(names, s.Name)
	}

	assert.Equal(t, []string{
		"accounts.workflow",
		"accountstatuses.workflow",
		"accounttax.workflow",
		"datafeeds.workflow",
		"products.workflow",
		"productstatuses.workflow",
		"shippingsettings.workflow",
	}, names)
	assert.True(t, IsName(WorkflowsAlias))
	assert.True(t, IsName("orders.workflow"))
	assert.False(t, IsName("orders.list"))
}

func TestUniqueID(t *testing.T) {
	a, b := UniqueID(), UniqueID()

	assert.NotEqual(t, a, b)
	assert.Regexp(t, regexp.MustCompile(`^[0-9]+$`), a)
}

func TestCheckMCA(t *testing.T) {
	mca := &config.MerchantInfo{IsMCA: true}
	single := &config.MerchantInfo{}

	assert.NoError(t, CheckMCA(mca, true, ""))
	assert.NoError(t, CheckMCA(single, false, ""))

	err := CheckMCA(single, true, "")
	assert.True(t, errors.IsPrecondition(err))
	assert.EqualError(t, err, "For this sample, you must use a multi-client account.")

	assert.EqualError(t, CheckMCA(mca, false, ""), "For this sample, you must not use a multi-client account.")
	assert.EqualError(t, CheckMCA(mca, false, "custom"), "custom")
}

func TestFactories(t *testing.T) {
	info := &config.MerchantInfo{WebsiteURL: "https://shop.example.com/"}

	product := NewProduct(info, "book#1")
	assert.Equal(t, "https://shop.example.com/tale-of-two-cities.html", product.Link)
	assert.Equal(t, "9780007350896", product.Gtin)
	assert.Equal(t, "2.50", product.Price.Value)

	feed := NewDatafeed(&config.MerchantInfo{}, "feed1")
	assert.Equal(t, "https://feeds.myshop.com/feed1", feed.FetchSchedule.FetchURL)
	assert.Equal(t, "feed1", feed.FileName)
	assert.Equal(t, int64(6), feed.FetchSchedule.Hour)

	assert.Equal(t, "https://shop.example.com/feed1", NewDatafeed(info, "feed1").FetchSchedule.FetchURL)
	assert.Equal(t, "http://my-book-shop.com/tale-of-two-cities.jpg", NewProduct(&config.MerchantInfo{}, "x").ImageLink)

	tax := NewAccountTax(42)
	assert.Equal(t, uint64(21167), tax.Rules[0].LocationID)
	assert.True(t, tax.Rules[0].UseGlobalRate)

	assert.Equal(t, "https://account1.example.com/", NewSubAccount("account1").WebsiteURL)
	assert.Equal(t, "5.00", NewShippingSettings(1).Services[0].RateGroups[0].SingleValue.FlatRate.Value)
}
