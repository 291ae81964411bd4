package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/inboxsim/internal/adapters/corpus"
	"github.com/renato0307/inboxsim/internal/domain"
)

const studyDoc = `
saveLocation: out
emailListLocation: emails.csv
emailResourceLocation: res
sessions:
  main:
    duration: 1
    legitEmails:
      emailListRange: {start: 1, finish: 4}
      shuffleEmails: true
`

const corpusCSV = `ID,name,from,to,title,content,attachment,star,time,readState,category
1,Alice,alice@example.com,me,Hello,hello.html,None,false,,false,work
2,Bob,bob@example.com,me,Lunch,lunch.html,None,false,,false,work
3,Bank,bank@example.com,me,Verify,verify.html,P_form.pdf,false,,false,bank
4,Carol,carol@example.com,"me,dan@example.com",Report,report.html,None,true,,true,work
`

func writeStudy(t *testing.T, doc, csv string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "study.yaml"), []byte(doc), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "emails.csv"), []byte(csv), 0644))
	return filepath.Join(dir, "study.yaml")
}

func TestStudyService_Load(t *testing.T) {
	path := writeStudy(t, studyDoc, corpusCSV)
	service := NewStudyService(corpus.NewCSVLoader())

	study, emails, err := service.Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "out"), study.SaveLocation)
	assert.Equal(t, 4, emails.Len())
}

func TestStudyService_LoadSaveOverride(t *testing.T) {
	path := writeStudy(t, studyDoc, corpusCSV)
	override := t.TempDir()

	study, _, err := NewStudyService(corpus.NewCSVLoader()).Load(path, override)
	require.NoError(t, err)
	assert.Equal(t, override, study.SaveLocation)
}

func TestStudyService_LoadBadCorpus(t *testing.T) {
	path := writeStudy(t, studyDoc, "ID,name\n1,x\n")

	_, _, err := NewStudyService(corpus.NewCSVLoader()).Load(path, "")
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestStudyService_PreviewIsDeterministic(t *testing.T) {
	path := writeStudy(t, studyDoc, corpusCSV)
	service := NewStudyService(corpus.NewCSVLoader())
	study, emails, err := service.Load(path, "")
	require.NoError(t, err)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	first, err := service.Preview(study, emails, "main", 42, now)
	require.NoError(t, err)
	second, err := service.Preview(study, emails, "", 42, now)
	require.NoError(t, err)

	assert.Equal(t, first.Inbox.Entries(), second.Inbox.Entries())

	_, err = service.Preview(study, emails, "missing", 42, now)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
