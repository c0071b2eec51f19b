package feed

import "strings"

// Alias resolution is declarative: every canonical field carries an
// ordered candidate list: canonical name first, uppercase-snake export
// variant, then the localized labels seen in real shop exports. One
// generic lookup walks the list and the first non-empty cell wins.

type aliasList []string

// lookup returns the first non-empty value among the aliases. Keys match
// exactly first, then case-insensitively, so "CODE", "Code" and "kód"
// headers all resolve without separate table entries for every casing.
func (a aliasList) lookup(row RawRow) (any, bool) {
	for _, key := range a {
		if v, ok := row[key]; ok && cellString(v) != "" {
			return v, true
		}
	}
	lower := make(map[string]any, len(row))
	for k, v := range row {
		lk := strings.ToLower(k)
		if _, exists := lower[lk]; !exists {
			lower[lk] = v
		}
	}
	for _, key := range a {
		if v, ok := lower[strings.ToLower(key)]; ok && cellString(v) != "" {
			return v, true
		}
	}
	return nil, false
}

func (a aliasList) str(row RawRow) string {
	v, ok := a.lookup(row)
	if !ok {
		return ""
	}
	return strings.TrimSpace(cellString(v))
}

var productAliases = struct {
	code, parentCode, name                    aliasList
	shortDescription, description             aliasList
	metaTitle, metaDescription                aliasList
	defaultCategory, categoryText             aliasList
	additionalCategories                      aliasList
	price, priceBeforeDiscount, purchasePrice aliasList
	availability, availabilityInStock         aliasList
	availabilityOutOfStock                    aliasList
	deliveryDays, stock                       aliasList
	ean, manufacturer, brand, warranty        aliasList
	weight, image, additionalImages           aliasList
	filterParameters                          aliasList
	isAction, isNew, isVisible                aliasList
	actionEndDate, createdAt, updatedAt       aliasList
}{
	code:       aliasList{"code", "CODE", "kód", "kod"},
	parentCode: aliasList{"parentCode", "PAIR_CODE", "PARENT_CODE", "ITEMGROUP_ID", "kód páru", "kod paru"},
	name:       aliasList{"name", "NAME", "PRODUCTNAME", "PRODUCT", "TITLE", "název", "nazev", "jméno"},

	shortDescription: aliasList{"shortDescription", "SHORT_DESCRIPTION", "DESCRIPTION_SHORT", "krátký popis", "kratky popis"},
	description:      aliasList{"description", "DESCRIPTION", "LONG_DESCRIPTION", "popis"},
	metaTitle:        aliasList{"metaTitle", "META_TITLE", "SEO_TITLE", "SEO titulek", "titulek"},
	metaDescription:  aliasList{"metaDescription", "META_DESCRIPTION", "SEO_DESCRIPTION", "SEO popis", "meta popis"},

	defaultCategory:      aliasList{"defaultCategory", "DEFAULT_CATEGORY", "výchozí kategorie", "vychozi kategorie"},
	categoryText:         aliasList{"categoryText", "CATEGORYTEXT", "CATEGORY", "kategorie"},
	additionalCategories: aliasList{"additionalCategories", "ADDITIONAL_CATEGORIES", "další kategorie", "dalsi kategorie"},

	price:               aliasList{"price", "PRICE", "PRICE_VAT", "cena", "cena s DPH"},
	priceBeforeDiscount: aliasList{"priceBeforeDiscount", "STANDARD_PRICE", "PRICE_BEFORE_DISCOUNT", "běžná cena", "bezna cena"},
	purchasePrice:       aliasList{"purchasePrice", "PURCHASE_PRICE", "nákupní cena", "nakupni cena"},

	availability:           aliasList{"availability", "AVAILABILITY", "dostupnost"},
	availabilityInStock:    aliasList{"availabilityInStock", "AVAILABILITY_IN_STOCK", "dostupnost skladem"},
	availabilityOutOfStock: aliasList{"availabilityOutOfStock", "AVAILABILITY_OUT_OF_STOCK", "dostupnost vyprodáno", "dostupnost vyprodano"},

	deliveryDays: aliasList{"deliveryDays", "DELIVERY_DAYS", "DELIVERY_DATE", "doba dodání", "doba dodani"},
	stock:        aliasList{"stock", "STOCK", "AMOUNT", "sklad", "skladem", "počet kusů"},

	ean:          aliasList{"ean", "EAN", "EAN kód", "čárový kód", "carovy kod"},
	manufacturer: aliasList{"manufacturer", "MANUFACTURER", "výrobce", "vyrobce"},
	brand:        aliasList{"brand", "BRAND", "značka", "znacka"},
	warranty:     aliasList{"warranty", "WARRANTY", "záruka", "zaruka"},
	weight:       aliasList{"weight", "WEIGHT", "hmotnost"},

	image:            aliasList{"image", "IMGURL", "IMAGE", "obrázek", "obrazek"},
	additionalImages: aliasList{"additionalImages", "ADDITIONAL_IMAGES", "IMGURL_ALTERNATIVE", "další obrázky", "dalsi obrazky"},

	filterParameters: aliasList{"filterParameters", "FILTER_PARAMETERS", "filtrační parametry", "filtracni parametry"},

	isAction:  aliasList{"isAction", "ACTION", "FLAG_ACTION", "akce"},
	isNew:     aliasList{"isNew", "NEW", "FLAG_NEW", "novinka"},
	isVisible: aliasList{"isVisible", "VISIBLE", "VISIBILITY", "viditelný", "zobrazit"},

	actionEndDate: aliasList{"actionEndDate", "ACTION_END", "ACTION_UNTIL", "konec akce"},
	createdAt:     aliasList{"createdAt", "CREATED", "DATE_CREATED", "vytvořeno", "vytvoreno"},
	updatedAt:     aliasList{"updatedAt", "UPDATED", "DATE_UPDATED", "LAST_UPDATE", "změněno", "zmeneno"},
}

var categoryAliases = struct {
	code, name, parentCode, path aliasList
	description, isActive        aliasList
	productCount, order          aliasList
}{
	code:         aliasList{"code", "CODE", "kód", "kod"},
	name:         aliasList{"name", "NAME", "CATEGORY_NAME", "název", "nazev"},
	parentCode:   aliasList{"parentCode", "PARENT_CODE", "PARENT_ID", "nadřazená kategorie", "nadrazena kategorie"},
	path:         aliasList{"path", "PATH", "CATEGORY_FULL", "CATEGORYTEXT", "cesta", "kategorie"},
	description:  aliasList{"description", "DESCRIPTION", "popis"},
	isActive:     aliasList{"isActive", "VISIBLE", "ACTIVE", "aktivní", "aktivni", "zobrazit"},
	productCount: aliasList{"productCount", "PRODUCT_COUNT", "počet produktů", "pocet produktu"},
	order:        aliasList{"order", "ORDER", "PRIORITY", "pořadí", "poradi"},
}

// Numbered image columns probed by the canonicalizer, %d in 2..20.
var numberedImagePatterns = []string{
	"image%d", "IMAGE_%d", "IMGURL_%d", "obrázek %d", "obrazek %d",
}

const maxNumberedImages = 20

// Breadcrumb delimiters tried in order when deriving a category name from
// a path column.
var breadcrumbDelimiters = []string{"|", ">", "/", "\\"}
