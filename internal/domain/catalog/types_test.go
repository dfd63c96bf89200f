package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductPatchApply(t *testing.T) {
	desc := "old"
	p := &Product{
		Title:       "Phone",
		Description: &desc,
		Images:      []string{"a.png"},
		Price:       decimal.NewFromInt(100),
		InStock:     true,
		BrandID:     1,
	}

	title := "Phone 2"
	inStock := false
	original := decimal.NewNullDecimal(decimal.NewFromInt(150))
	ProductPatch{Title: &title, InStock: &inStock, OriginalPrice: &original}.Apply(p)

	assert.Equal(t, "Phone 2", p.Title)
	assert.False(t, p.InStock)
	assert.True(t, p.OriginalPrice.Valid)
	assert.Equal(t, "old", *p.Description, "unset fields are kept")
	assert.Equal(t, []string{"a.png"}, p.Images)
	assert.Equal(t, int64(1), p.BrandID)
}

func TestProductValidate(t *testing.T) {
	valid := func() *Product {
		return &Product{Title: "Phone", Price: decimal.NewFromInt(10), BrandID: 1}
	}
	require.NoError(t, valid().Validate())

	cases := map[string]func(*Product){
		"blank title":    func(p *Product) { p.Title = "  " },
		"negative price": func(p *Product) { p.Price = decimal.NewFromInt(-1) },
		"negative original": func(p *Product) {
			p.OriginalPrice = decimal.NewNullDecimal(decimal.NewFromInt(-5))
		},
		"negative reviews": func(p *Product) { p.ReviewCount = -1 },
		"negative sales":   func(p *Product) { p.SalesCount = -1 },
		"missing brand":    func(p *Product) { p.BrandID = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := valid()
			mutate(p)
			assert.ErrorIs(t, p.Validate(), ErrInvalidProduct)
		})
	}
}
