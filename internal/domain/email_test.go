package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAttachments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Attachment
	}{
		{"none literal", "None", nil},
		{"empty", "", nil},
		{"single legit", "report.pdf", []Attachment{{Name: "report.pdf"}}},
		{"phishing prefix", "P_invoice.docm", []Attachment{{Name: "invoice.docm", Phishing: true}}},
		{"mixed with spaces", "a.pdf, P_b.zip", []Attachment{{Name: "a.pdf"}, {Name: "b.zip", Phishing: true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseAttachments(tt.input))
		})
	}
}

func TestReplyAllRecipients_ExcludesParticipant(t *testing.T) {
	e := Email{To: "me, alice@example.com, bob@example.com"}

	assert.Equal(t, []string{"alice@example.com", "bob@example.com"}, e.ReplyAllRecipients())
	assert.True(t, e.HasOtherRecipients())
	assert.False(t, Email{To: "me"}.HasOtherRecipients())
}

func TestNewCorpus_RejectsDuplicateIDs(t *testing.T) {
	_, err := NewCorpus([]Email{{ID: 1}, {ID: 1}})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestCorpus_FilterKeepsCorpusOrder(t *testing.T) {
	corpus, err := NewCorpus([]Email{{ID: 5}, {ID: 2}, {ID: 9}, {ID: 3}})
	require.NoError(t, err)

	filtered := corpus.Filter(IDRange{Start: 2, Finish: 5})

	require.Len(t, filtered, 3)
	assert.Equal(t, 5, filtered[0].ID)
	assert.Equal(t, 2, filtered[1].ID)
	assert.Equal(t, 3, filtered[2].ID)
}

func TestCorpus_LookupFollowsRequestedOrder(t *testing.T) {
	corpus, err := NewCorpus([]Email{{ID: 1}, {ID: 2}, {ID: 3}})
	require.NoError(t, err)

	found := corpus.Lookup([]int{3, 99, 1})

	require.Len(t, found, 2)
	assert.Equal(t, 3, found[0].ID)
	assert.Equal(t, 1, found[1].ID)
}

func TestSessionConfig_IsAlertMinute(t *testing.T) {
	cfg := SessionConfig{AlertMinutes: []int{5, 1}}

	assert.True(t, cfg.IsAlertMinute(5))
	assert.True(t, cfg.IsAlertMinute(1))
	assert.False(t, cfg.IsAlertMinute(2))
}
