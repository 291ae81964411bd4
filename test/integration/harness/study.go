package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// DefaultStudy has two sessions over a six-email corpus.
// Emails 5 and 6 are phishing decoys; "main" puts decoy 5 second in the inbox and receives 4 as incoming mail.
const DefaultStudy = `
saveLocation: logs
emailListLocation: emails.csv
emailResourceLocation: resources
sessions:
  training:
    duration: 1
    legitEmails:
      emailListRange: {start: 1, finish: 3}
  main:
    duration: 2
    incomingEmails: true
    incomingInterval: 0.5
    legitEmails:
      emailListRange: {start: 1, finish: 3}
      incomingRange: {start: 4, finish: 4}
    hasPhishEmails: true
    phishEmails:
      emailList: [5, 6]
      emailListNum: 1
      emailListLocations: 2
    cssStyles:
      bank:
        header: "color: red"
`

const defaultCorpus = `ID,name,from,to,title,content,attachment,star,time,readState,category
1,Alice,alice@uni.edu,me@uni.edu,Lunch on Friday,email1.html,None,false,09:00,true,work
2,Bob,bob@uni.edu,"me@uni.edu,carol@uni.edu",Project update,email2.html,report.pdf,false,09:15,false,work
3,Carol,carol@uni.edu,me@uni.edu,Seminar,email3.html,None,true,10:00,false,work
4,IT Desk,it@uni.edu,me@uni.edu,Maintenance window,email4.html,None,false,10:30,false,work
5,Your Bank,security@bank.example.co,me@uni.edu,Verify your account,email5.html,P_statement.pdf,false,11:00,false,bank
6,Parcel,track@parcel.example.co,me@uni.edu,Delivery failed,email6.html,None,false,11:30,false,bank
`

// WriteStudy writes a study document plus its corpus and bodies to a temp directory.
// It returns the path of the study file.
func WriteStudy(tb testing.TB, study string) string {
	tb.Helper()

	dir := tb.TempDir()
	write := func(name, content string) {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			tb.Fatalf("Failed to create %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			tb.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	write("study.yaml", study)
	write("emails.csv", defaultCorpus)
	for _, line := range strings.Split(strings.TrimSpace(defaultCorpus), "\n")[1:] {
		id, _, _ := strings.Cut(line, ",")
		write(filepath.Join("resources", "html", "email"+id+".html"),
			`<p>Hello,</p><p>Please see <a href="http://example.co/`+id+`">this link</a>.</p>`)
	}

	return filepath.Join(dir, "study.yaml")
}
