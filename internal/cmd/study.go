package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/renato0307/inboxsim/internal/domain"
)

// ValidateCmd checks a study file
type ValidateCmd struct {
	Study string `arg:"" help:"Study file (YAML)" type:"path"`
}

// Run executes the validate command
func (v *ValidateCmd) Run(cli *CLI) error {
	study, corpus, err := cli.Container.StudyService.Load(v.Study, "")
	if err != nil {
		return err
	}

	fmt.Printf("Study OK: %d sessions, %d emails\n", len(study.Sessions), corpus.Len())
	fmt.Printf("Emails: %s\n", study.EmailListLocation)
	fmt.Printf("Resources: %s\n", study.EmailResourceLocation)
	fmt.Printf("Logs: %s\n\n", study.SaveLocation)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "#\tSession\tDuration\tInbox\tIncoming\tPhishing")
	fmt.Fprintln(w, "─\t───────\t────────\t─────\t────────\t────────")
	for i, sess := range study.Sessions {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d-%d\t%s\t%s\n",
			i+1,
			sess.Name,
			sess.Duration,
			sess.Inbox.Range.Start,
			sess.Inbox.Range.Finish,
			incomingSummary(sess),
			phishingSummary(sess))
	}
	return w.Flush()
}

// PreviewCmd shows a session's starting inbox without logging anything
type PreviewCmd struct {
	Study   string `arg:"" help:"Study file (YAML)" type:"path"`
	Seed    uint64 `help:"Random seed; the same seed always gives the same inbox" default:"1"`
	Session string `help:"Session name (defaults to the first session)" short:"s"`
}

// Run executes the preview command
func (p *PreviewCmd) Run(cli *CLI) error {
	study, corpus, err := cli.Container.StudyService.Load(p.Study, "")
	if err != nil {
		return err
	}

	state, err := cli.Container.StudyService.Preview(study, corpus, p.Session, p.Seed, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Session: %s (%s)\n", state.Config.Name, state.Config.Duration)
	fmt.Printf("Inbox: %d emails, %d unread, %d incoming\n\n",
		state.Inbox.Len(), state.Inbox.UnreadCount(), len(state.Pending))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTime\tFlags\tFrom\tSubject\tCategory")
	fmt.Fprintln(w, "──\t────\t─────\t────\t───────\t────────")
	for _, entry := range state.Inbox.Entries() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			entry.Email.ID,
			entry.DisplayTime,
			entryFlags(entry),
			entry.Email.Name,
			entry.Email.Title,
			entry.Email.Category)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(state.Pending) > 0 {
		fmt.Println()
		fmt.Println("Incoming, in order:")
		for _, email := range state.Pending {
			fmt.Printf("  %d  %s\n", email.ID, email.Title)
		}
	}
	return nil
}

func incomingSummary(sess domain.SessionConfig) string {
	if !sess.HasIncoming() {
		return "-"
	}
	return fmt.Sprintf("%d-%d every %s", sess.Incoming.Start, sess.Incoming.Finish, *sess.IncomingInterval)
}

func phishingSummary(sess domain.SessionConfig) string {
	if sess.Phishing == nil {
		return "-"
	}
	return fmt.Sprintf("%d inbox, %d incoming", len(sess.Phishing.InboxIDs), len(sess.Phishing.IncomingIDs))
}

// entryFlags renders unread (•), starred (★) and attachment (📎) markers
func entryFlags(entry domain.Entry) string {
	flags := ""
	if !entry.Read {
		flags += "•"
	}
	if entry.Starred {
		flags += "★"
	}
	if len(entry.Email.Attachments) > 0 {
		flags += "📎"
	}
	return flags
}
