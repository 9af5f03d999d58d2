package content_test

import (
	"testing"
	"time"

	"github.com/dohaquest/questlinks/content"
	"github.com/dohaquest/questlinks/model"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require.NoError(t, content.Validate())
}

func TestLinksOrder(t *testing.T) {
	got := make([]string, 0)
	for _, l := range content.Links() {
		got = append(got, l.Destination)
	}

	want := []string{
		"https://dohaquest.com/attractions",
		"https://dohaquest.com/plan-your-visit",
		"https://maps.google.com/?q=Quest+Doha",
		"mailto:info@dohaquest.com",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("link order mismatch (-want +got):\n%s", diff)
	}
}

func TestRevealDelaysIncrease(t *testing.T) {
	var last time.Duration = -1

	for _, l := range content.Links() {
		assert.Greater(t, l.RevealDelay, last, l.Title)
		last = l.RevealDelay
	}

	for _, s := range content.Socials() {
		assert.Greater(t, s.RevealDelay, last, s.Label)
		last = s.RevealDelay
	}
}

func TestRegistryIsNotShared(t *testing.T) {
	l := content.Links()
	l[0].Title = "changed"

	s := content.Socials()
	s[0].Label = "changed"

	assert.NotEqual(t, "changed", content.Links()[0].Title)
	assert.NotEqual(t, "changed", content.Socials()[0].Label)
}

func TestModal(t *testing.T) {
	tests := []struct {
		id    model.ModalID
		title string
	}{
		{model.ModalAbout, "من نحن - كويست الدوحة"},
		{model.ModalPrivacy, "سياسة الخصوصية"},
		{model.ModalSecurity, "قواعد الأمن والسلامة"},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			m, ok := content.Modal(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.id, m.ID)
			assert.Equal(t, tt.title, m.Title)
			assert.NotEmpty(t, m.Blocks)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, ok := content.Modal(model.ModalID(42))
		assert.False(t, ok)
	})
}

func TestSecurityRulesAreAList(t *testing.T) {
	m, ok := content.Modal(model.ModalSecurity)
	require.True(t, ok)

	last := m.Blocks[len(m.Blocks)-1]
	assert.Equal(t, model.BlockList, last.Kind)
	assert.Len(t, last.Items, 5)
}

func TestTriggersFollowModalOrder(t *testing.T) {
	triggers := content.Triggers()
	require.Len(t, triggers, len(model.ModalIDs))

	for i, tr := range triggers {
		assert.Equal(t, model.ModalIDs[i], tr.Modal)
		assert.NotEmpty(t, tr.Label)
	}
}

func TestValidateEntries(t *testing.T) {
	good := model.LinkEntry{Destination: "https://a.example", Title: "a", RevealDelay: time.Second}

	t.Run("empty destination and title", func(t *testing.T) {
		err := content.ValidateEntries([]model.LinkEntry{{RevealDelay: time.Second}}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "link 0: empty destination")
		assert.Contains(t, err.Error(), "link 0: empty title")
	})

	t.Run("empty social label", func(t *testing.T) {
		err := content.ValidateEntries(
			[]model.LinkEntry{good},
			[]model.SocialEntry{{Destination: "https://b.example", RevealDelay: 2 * time.Second}},
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "social 0: empty label")
	})

	t.Run("duplicate destination", func(t *testing.T) {
		dup := good
		dup.RevealDelay = 2 * time.Second
		err := content.ValidateEntries([]model.LinkEntry{good, dup}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate destination")
	})

	t.Run("socials must reveal after links", func(t *testing.T) {
		err := content.ValidateEntries(
			[]model.LinkEntry{good},
			[]model.SocialEntry{{Destination: "https://b.example", Label: "b", RevealDelay: time.Second}},
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reveal delay")
	})

	t.Run("valid", func(t *testing.T) {
		err := content.ValidateEntries(
			[]model.LinkEntry{good},
			[]model.SocialEntry{{Destination: "mailto:x@example.com", Label: "mail", RevealDelay: 2 * time.Second}},
		)
		assert.NoError(t, err)
	})
}
