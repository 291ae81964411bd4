package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/inboxsim/internal/domain"
)

const header = "ID,name,from,to,title,content,attachment,star,time,readState,category\n"

func TestParse_ReadsRows(t *testing.T) {
	data := header +
		`1,Alice,alice@uni.edu,"me,bob@uni.edu",Lunch?,lunch.html,None,FALSE,09:00,True,work` + "\n" +
		`2,Bank,security@bank.example,me,Verify now,verify.html,"P_invoice.pdf,terms.pdf",yes,08:12,0,bank` + "\n"

	corpus, err := Parse(strings.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 2, corpus.Len())

	first, ok := corpus.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Alice", first.Name)
	assert.Equal(t, "me,bob@uni.edu", first.To)
	assert.Nil(t, first.Attachments)
	assert.True(t, first.Read)
	assert.False(t, first.Starred)

	second, ok := corpus.Get(2)
	require.True(t, ok)
	assert.True(t, second.Starred)
	assert.False(t, second.Read)
	assert.Equal(t, []domain.Attachment{
		{Name: "invoice.pdf", Phishing: true},
		{Name: "terms.pdf"},
	}, second.Attachments)
	assert.Equal(t, "bank", second.Category)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		contains string
	}{
		{"empty", "", "email list is empty"},
		{"missing columns", "ID,name\n1,x\n", "missing columns"},
		{"bad id", header + "x,a,b,c,d,e,None,false,t,false,cat\n", "invalid ID"},
		{"bad bool", header + "1,a,b,c,d,e,None,maybe,t,false,cat\n", "invalid boolean"},
		{"duplicate id", header + "1,a,b,c,d,e,None,0,t,0,cat\n1,a,b,c,d,e,None,0,t,0,cat\n", "duplicate email id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", false},
		{"FALSE", false},
		{"no", false},
		{"0", false},
		{"True", true},
		{"YES", true},
		{"1", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBool(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCSVLoader_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emails.csv")
	require.NoError(t, os.WriteFile(path, []byte(header+"7,a,b,me,d,e,None,0,t,0,cat\n"), 0644))

	corpus, err := NewCSVLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, corpus.Len())

	_, err = NewCSVLoader().Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}
