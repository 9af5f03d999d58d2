package model_test

import (
	"testing"

	"github.com/dohaquest/questlinks/model"
	"github.com/stretchr/testify/assert"
)

func TestModalID(t *testing.T) {
	tests := []struct {
		id   model.ModalID
		slug string
	}{
		{model.ModalAbout, "about"},
		{model.ModalPrivacy, "privacy"},
		{model.ModalSecurity, "security"},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			assert.True(t, tt.id.Valid())
			assert.Equal(t, tt.slug, tt.id.String())

			parsed, ok := model.ParseModalID(tt.slug)
			assert.True(t, ok)
			assert.Equal(t, tt.id, parsed)
		})
	}

	t.Run("out of range", func(t *testing.T) {
		id := model.ModalID(7)

		assert.False(t, id.Valid())
		assert.Equal(t, "ModalID(7)", id.String())
	})

	t.Run("unknown slug", func(t *testing.T) {
		for _, s := range []string{"", "About", "careers"} {
			_, ok := model.ParseModalID(s)
			assert.False(t, ok, s)
		}
	})
}
