package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cozyCondo = `{"title":"Cozy Condo","address":"1 Main St","city":"Austin","state":"TX","zip_code":"78701","price":250000,"beds":2,"baths":1.5}`

func TestParsePropertyAppliesDefaults(t *testing.T) {
	in, err := ParseProperty([]byte(cozyCondo))
	require.NoError(t, err)

	assert.Equal(t, "Cozy Condo", *in.Title)
	assert.Equal(t, int64(250000), *in.Price)
	assert.Equal(t, 1.5, *in.Baths)
	assert.Equal(t, DefaultPropertyStatus, *in.Status)
	assert.Equal(t, DefaultPropertyType, *in.Type)
	assert.Nil(t, in.Features)
	assert.Nil(t, in.Sqft)
	assert.Nil(t, in.LotSize)
}

func TestParsePropertyKeepsProvidedOptionals(t *testing.T) {
	body := `{"title":"Ranch","address":"a","city":"c","state":"s","zip_code":"z","price":0,"beds":0,"baths":0,
		"sqft":0,"lot_size":2.25,"year_built":1901,"description":"old","features":["Barn"],"images":["x.jpg"],
		"status":"Sold","type":"Ranch","unknown":"ignored"}`
	in, err := ParseProperty([]byte(body))
	require.NoError(t, err)

	assert.Equal(t, int64(0), *in.Sqft)
	assert.Equal(t, 2.25, *in.LotSize)
	assert.Equal(t, int64(1901), *in.YearBuilt)
	assert.Equal(t, []string{"Barn"}, in.Document(time.Now()).Features)
	assert.Equal(t, "Sold", *in.Status)
	assert.Equal(t, "Ranch", *in.Type)
}

func TestParsePropertyEmptyStringIsPresent(t *testing.T) {
	body := `{"title":"","address":"","city":"","state":"","zip_code":"","price":1,"beds":1,"baths":1}`
	_, err := ParseProperty([]byte(body))
	assert.NoError(t, err)
}

func TestParsePropertyMissingRequired(t *testing.T) {
	body := `{"title":"Cozy Condo","address":"1 Main St","city":"Austin","state":"TX","zip_code":"78701","beds":2,"baths":1.5}`
	_, err := ParseProperty([]byte(body))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []FieldError{{Field: "price", Message: "field required"}}, verr.Fields)
	assert.Contains(t, verr.Error(), "price")
}

func TestParsePropertyEnumeratesEveryMissingField(t *testing.T) {
	_, err := ParseProperty([]byte(`{}`))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	for _, f := range []string{"title", "address", "city", "state", "zip_code", "price", "beds", "baths"} {
		assert.True(t, verr.Has(f), "expected %s to be reported", f)
	}
	assert.Len(t, verr.Fields, 8)
}

func TestParsePropertyRejectsNegativeValues(t *testing.T) {
	cases := map[string]string{
		"price":    `"price":-1,"beds":2,"baths":1.5`,
		"beds":     `"price":1,"beds":-2,"baths":1.5`,
		"baths":    `"price":1,"beds":2,"baths":-0.5`,
		"sqft":     `"price":1,"beds":2,"baths":1.5,"sqft":-10`,
		"lot_size": `"price":1,"beds":2,"baths":1.5,"lot_size":-0.1`,
	}
	for field, numbers := range cases {
		t.Run(field, func(t *testing.T) {
			body := `{"title":"t","address":"a","city":"c","state":"s","zip_code":"z",` + numbers + `}`
			_, err := ParseProperty([]byte(body))

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, field, verr.Fields[0].Field)
			assert.Equal(t, "must be greater than or equal to 0", verr.Fields[0].Message)
		})
	}
}

func TestParsePropertyTypeMismatch(t *testing.T) {
	cases := []struct {
		name    string
		numbers string
		field   string
		message string
	}{
		{"string price", `"price":"cheap","beds":2,"baths":1`, "price", "must be an integer"},
		{"fractional beds", `"price":1,"beds":2.5,"baths":1`, "beds", "must be an integer"},
		{"string baths", `"price":1,"beds":2,"baths":"two"`, "baths", "must be a number"},
		{"features not a list", `"price":1,"beds":2,"baths":1,"features":"Pool"`, "features", "must be a list of strings"},
		{"null feature", `"price":1,"beds":2,"baths":1,"features":["Pool",null]`, "features", "must be a list of strings"},
		{"numeric image", `"price":1,"beds":2,"baths":1,"images":["a.jpg",7]`, "images", "must be a list of strings"},
		{"fractional float price", `"price":250000.5,"beds":2,"baths":1`, "price", "must be an integer"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := `{"title":"t","address":"a","city":"c","state":"s","zip_code":"z",` + tc.numbers + `}`
			_, err := ParseProperty([]byte(body))

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tc.field, verr.Fields[0].Field)
			assert.Equal(t, tc.message, verr.Fields[0].Message)
		})
	}
}

func TestParsePropertyKeysAreCaseSensitive(t *testing.T) {
	body := `{"TITLE":"t","Address":"a","CITY":"c","State":"s","Zip_Code":"z","PRICE":5,"Beds":1,"BATHS":1}`
	_, err := ParseProperty([]byte(body))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 8)
	for _, f := range verr.Fields {
		assert.Equal(t, "field required", f.Message, f.Field)
	}
}

func TestParsePropertyAcceptsWholeNumberFloats(t *testing.T) {
	body := `{"title":"t","address":"a","city":"c","state":"s","zip_code":"z","price":250000.0,"beds":2e0,"baths":1,"sqft":1.2e3}`
	in, err := ParseProperty([]byte(body))
	require.NoError(t, err)

	assert.Equal(t, int64(250000), *in.Price)
	assert.Equal(t, int64(2), *in.Beds)
	assert.Equal(t, int64(1200), *in.Sqft)
}

func TestParsePropertyRejectsNonObjects(t *testing.T) {
	for _, body := range []string{`[1,2]`, `"condo"`, `{`, ``} {
		_, err := ParseProperty([]byte(body))

		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "body %q", body)
		assert.True(t, verr.Has("body"), "body %q", body)
	}
}

func TestParsePropertyNullOptionalIsAbsent(t *testing.T) {
	body := `{"title":"t","address":"a","city":"c","state":"s","zip_code":"z","price":1,"beds":1,"baths":1,"sqft":null,"features":null,"status":null}`
	in, err := ParseProperty([]byte(body))
	require.NoError(t, err)

	assert.Nil(t, in.Sqft)
	assert.Equal(t, []string{}, in.Document(time.Now()).Features)
	assert.Equal(t, DefaultPropertyStatus, *in.Status)
}

func TestPropertyDocument(t *testing.T) {
	in, err := ParseProperty([]byte(cozyCondo))
	require.NoError(t, err)

	now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.FixedZone("CDT", -5*3600))
	doc := in.Document(now)

	assert.True(t, doc.ID.IsZero())
	assert.Equal(t, "Austin", doc.City)
	assert.Equal(t, int64(2), doc.Beds)
	assert.Equal(t, DefaultPropertyStatus, doc.Status)
	assert.Equal(t, DefaultPropertyType, doc.Type)
	assert.Equal(t, []string{}, doc.Features)
	assert.Equal(t, []string{}, doc.Images)

	withFeatures, err := ParseProperty([]byte(`{"title":"t","address":"a","city":"c","state":"s","zip_code":"z","price":1,"beds":1,"baths":1,"features":["Pool",""]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Pool", ""}, withFeatures.Document(now).Features)
	assert.Equal(t, time.UTC, doc.CreatedAt.Location())
	assert.True(t, doc.CreatedAt.Equal(now))
	assert.Equal(t, doc.CreatedAt, doc.UpdatedAt)
}
