package schemas

import (
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T) map[string]any {
	t.Helper()
	data, err := os.ReadFile("../testdata/profile.json")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func encode(t *testing.T, doc map[string]any) string {
	t.Helper()
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return string(data)
}

func TestValidateProfile_Valid(t *testing.T) {
	doc := loadFixture(t)
	assert.NoError(t, ValidateProfile(encode(t, doc)))
}

func TestValidateProfile_FAQIsOptional(t *testing.T) {
	doc := loadFixture(t)
	tmpl := doc["productDescriptionTemplate"].(map[string]any)
	delete(tmpl, "faq")

	assert.NoError(t, ValidateProfile(encode(t, doc)))
}

func TestValidateProfile_MissingSection(t *testing.T) {
	doc := loadFixture(t)
	delete(doc, "pricingStrategy")

	err := ValidateProfile(encode(t, doc))
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Len(t, ve.Errors, 1)
	assert.Equal(t, "(root)", ve.Errors[0].Field)
	assert.Contains(t, ve.Errors[0].Message, "pricingStrategy")
}

func TestValidateProfile_EmptyVariations(t *testing.T) {
	doc := loadFixture(t)
	overview := doc["profileOverview"].(map[string]any)
	overview["variations"] = []string{}

	err := ValidateProfile(encode(t, doc))
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "profileOverview.variations", ve.Errors[0].Field)
}

func TestValidateProfile_NestedFieldWrongType(t *testing.T) {
	doc := loadFixture(t)
	palette := doc["visuals"].(map[string]any)["colorPalette"].(map[string]any)
	palette["primary"].(map[string]any)["hex"] = 42

	err := ValidateProfile(encode(t, doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "visuals.colorPalette.primary.hex")
}

func TestValidateProfile_NotJSON(t *testing.T) {
	err := ValidateProfile("{ not json")
	require.Error(t, err)

	var ve *ValidationError
	assert.False(t, errors.As(err, &ve))
	assert.Contains(t, err.Error(), "failed to read JSON document")
}

func TestProfileSchema_IsValidJSON(t *testing.T) {
	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(ProfileSchema()), &schema))
	assert.Equal(t, "ProfileData", schema["title"])
}
