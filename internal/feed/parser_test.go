package feed

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

func TestParseUnsupportedFormat(t *testing.T) {
	_, err := Parse([]byte("data"), "feed.pdf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseEmptyFeed(t *testing.T) {
	_, err := Parse([]byte("CODE;NAME\n"), "feed.csv")
	assert.ErrorIs(t, err, ErrEmptyFeed)
}

func TestParseProductsSemicolonCSV(t *testing.T) {
	csv := "CODE;NAME;PRICE;STOCK;CATEGORYTEXT;DESCRIPTION\n" +
		"A1;Nůž kuchyňský;499,90;12;Kuchyně > Nože;Kvalitní nůž\n" +
		"A2;Prkénko;129;0;Kuchyně;\n"

	products, err := ParseProducts([]byte(csv), "export.csv")
	require.NoError(t, err)
	require.Len(t, products, 2)

	p := products[0]
	assert.Equal(t, "A1", p.Code)
	assert.Equal(t, "Nůž kuchyňský", p.Name)
	require.NotNil(t, p.Price)
	assert.InDelta(t, 499.90, *p.Price, 0.001)
	require.NotNil(t, p.Stock)
	assert.Equal(t, 12.0, *p.Stock)
	assert.Equal(t, "Kuchyně > Nože", p.CategoryText)
	assert.True(t, p.IsVisible)
}

func TestParseProductsLocalizedHeadersMatchCanonical(t *testing.T) {
	canonical := "code,name,price,stock,description\n" +
		"A1,Nůž,499,5,Kvalitní nůž z oceli\n"
	localized := "kód,název,cena,sklad,popis\n" +
		"A1,Nůž,499,5,Kvalitní nůž z oceli\n"

	a, err := ParseProducts([]byte(canonical), "a.csv")
	require.NoError(t, err)
	b, err := ParseProducts([]byte(localized), "b.csv")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestParseProductsWindows1250(t *testing.T) {
	utf8CSV := "kód;název;cena\nA1;Nůž kuchyňský;499\n"
	encoded, err := charmap.Windows1250.NewEncoder().Bytes([]byte(utf8CSV))
	require.NoError(t, err)

	products, err := ParseProducts(encoded, "export.csv")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Nůž kuchyňský", products[0].Name)
}

func TestParseProductsDropsRowsWithoutIdentity(t *testing.T) {
	csv := "CODE;NAME;PRICE\n" +
		";;499\n" +
		"A1;Nůž;499\n"

	products, err := ParseProducts([]byte(csv), "export.csv")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "A1", products[0].Code)
}

func TestParseProductsMissingTrailingFields(t *testing.T) {
	csv := "CODE;NAME;PRICE;EAN\n" +
		"A1;Nůž\n"

	products, err := ParseProducts([]byte(csv), "export.csv")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Nil(t, products[0].Price)
	assert.Empty(t, products[0].EAN)
}

func TestParseProductsMarkup(t *testing.T) {
	feed := `<?xml version="1.0" encoding="utf-8"?>
<SHOP>
  <SHOPITEM>
    <CODE>A1</CODE>
    <PRODUCTNAME>Nůž kuchyňský</PRODUCTNAME>
    <DESCRIPTION><![CDATA[<p>Kvalitní nůž & prkénko</p>]]></DESCRIPTION>
    <PRICE_VAT>499,90</PRICE_VAT>
    <IMGURL>https://img.example.com/a1.jpg</IMGURL>
    <IMGURL_ALTERNATIVE>https://img.example.com/a1-2.jpg</IMGURL_ALTERNATIVE>
    <IMGURL_ALTERNATIVE>https://img.example.com/a1-3.jpg</IMGURL_ALTERNATIVE>
    <PARAM>
      <PARAM_NAME>Barva</PARAM_NAME>
      <VAL>černá</VAL>
    </PARAM>
    <CATEGORYTEXT>Kuchyně | Nože</CATEGORYTEXT>
  </SHOPITEM>
  <SHOPITEM>
    <CODE>A2</CODE>
    <PRODUCTNAME>Prkénko</PRODUCTNAME>
  </SHOPITEM>
</SHOP>`

	products, err := ParseProducts([]byte(feed), "export.xml")
	require.NoError(t, err)
	require.Len(t, products, 2)

	p := products[0]
	assert.Equal(t, "A1", p.Code)
	assert.Equal(t, "Nůž kuchyňský", p.Name)
	assert.Equal(t, "<p>Kvalitní nůž & prkénko</p>", p.Description)
	require.NotNil(t, p.Price)
	assert.InDelta(t, 499.90, *p.Price, 0.001)
	assert.Equal(t, "https://img.example.com/a1.jpg", p.Image)
	assert.Equal(t, 3, p.ImageCount)
	assert.Equal(t, map[string]string{"Barva": "černá"}, p.Parameters)
	assert.Equal(t, "Kuchyně | Nože", p.CategoryText)
}

func TestParseProductsSpreadsheet(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"CODE", "NAME", "PRICE", "STOCK"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"A1", "Nůž", 499.9, 12}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"A2", "Prkénko", 129, 0}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	products, err := ParseProducts(buf.Bytes(), "export.xlsx")
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "A1", products[0].Code)
	require.NotNil(t, products[0].Price)
	assert.InDelta(t, 499.9, *products[0].Price, 0.001)
}

func TestParseCategoriesCSV(t *testing.T) {
	csv := "code;name;parentCode;popis\n" +
		"c1;Kuchyně;;Vše pro kuchyni\n" +
		"c2;Nože;c1;\n"

	categories, err := ParseCategories([]byte(csv), "categories.csv")
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "c1", categories[0].Code)
	assert.Equal(t, "Vše pro kuchyni", categories[0].Description)
	assert.Equal(t, "c1", categories[1].ParentCode)
	assert.True(t, categories[1].IsActive)
}

func TestParseCategoriesNameFromPath(t *testing.T) {
	csv := "code;path\n" +
		"c1;Dům | Kuchyně | Nože\n"

	categories, err := ParseCategories([]byte(csv), "categories.csv")
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Nože", categories[0].Name)
}
