package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert.Equal(t, English, Parse("en"))
	assert.Equal(t, Korean, Parse("ko"))
	assert.Equal(t, Korean, Parse(""))
	assert.Equal(t, Korean, Parse("fr"))
}

func TestGetFallsBackToKorean(t *testing.T) {
	assert.Equal(t, Korean, Get(Lang("de")).Lang)
}

func TestBundlesAreDistinct(t *testing.T) {
	ko := Get(Korean)
	en := Get(English)

	assert.NotEqual(t, ko.Meta.Title, en.Meta.Title)
	assert.NotEqual(t, ko.Validation.NameRequired, en.Validation.NameRequired)
	assert.Equal(t, "ko_KR", ko.Meta.Locale)
	assert.Equal(t, "en_US", en.Meta.Locale)
}
