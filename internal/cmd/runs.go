package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/renato0307/inboxsim/internal/domain"
)

const timeLayout = "2006-01-02 15:04:05"

// RunsCmd inspects the run registry
type RunsCmd struct {
	Events RunsEventsCmd `cmd:"events" help:"Show the event log of a run"`
	List   RunsListCmd   `cmd:"list" help:"List recorded runs" default:"1"`
	View   RunsViewCmd   `cmd:"view" help:"View a specific run"`
}

// RunsListCmd lists runs, newest first
type RunsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Limit  int    `help:"Maximum number of runs to show (0 = all)" default:"20" short:"n"`
}

// Run executes the list command
func (r *RunsListCmd) Run(cli *CLI) error {
	runs, err := cli.Container.RunService.List(context.Background(), r.Limit)
	if err != nil {
		return err
	}

	if r.Format == "json" {
		return printJSON(runs)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tParticipant\tStatus\tStarted\tDuration\tSessions")
	fmt.Fprintln(w, "──\t───────────\t──────\t───────\t────────\t────────")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
			run.ID,
			run.Participant,
			run.Status,
			run.StartedAt.Local().Format(timeLayout),
			runDuration(run.StartedAt, run.FinishedAt),
			len(run.Sessions))
	}
	return w.Flush()
}

// RunsViewCmd views one run
type RunsViewCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	ID     string `arg:"" help:"Run id"`
}

// Run executes the view command
func (r *RunsViewCmd) Run(cli *CLI) error {
	run, err := cli.Container.RunService.Get(context.Background(), r.ID)
	if err != nil {
		return err
	}

	if r.Format == "json" {
		return printJSON(run)
	}

	fmt.Printf("Run: %s\n", run.ID)
	fmt.Printf("Participant: %s\n", run.Participant)
	fmt.Printf("Status: %s\n", run.Status)
	fmt.Printf("Study: %s\n", run.StudyPath)
	fmt.Printf("Event Log: %s\n", run.LogPath)
	fmt.Printf("Started: %s\n", run.StartedAt.Local().Format(timeLayout))
	if run.FinishedAt != nil {
		fmt.Printf("Finished: %s\n", run.FinishedAt.Local().Format(timeLayout))
	}

	if len(run.Sessions) == 0 {
		return nil
	}

	fmt.Printf("\nSessions:\n")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "  #\tName\tStarted\tDuration\tVisible\tUnread")
	for _, sess := range run.Sessions {
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%d\t%d\n",
			sess.Position+1,
			sess.Name,
			sess.StartedAt.Local().Format(timeLayout),
			runDuration(sess.StartedAt, sess.FinishedAt),
			sess.Visible,
			sess.Unread)
	}
	return w.Flush()
}

// RunsEventsCmd prints the event log of a run
type RunsEventsCmd struct {
	Action string `help:"Only show events with this action tag"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	ID     string `arg:"" help:"Run id"`
}

// Run executes the events command
func (r *RunsEventsCmd) Run(cli *CLI) error {
	_, events, err := cli.Container.RunService.Events(context.Background(), r.ID)
	if err != nil {
		return err
	}

	if r.Action != "" {
		filtered := events[:0]
		for _, event := range events {
			if event.Action == r.Action {
				filtered = append(filtered, event)
			}
		}
		events = filtered
	}

	if r.Format == "json" {
		return printJSON(events)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Time\tSession\tEmail\tAction\tDetail")
	fmt.Fprintln(w, "────\t───────\t─────\t──────\t──────")
	for _, event := range events {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			event.Time.Format(timeLayout),
			event.Session,
			eventEmail(event),
			event.Action,
			event.Detail)
	}
	return w.Flush()
}

func eventEmail(event domain.LogEvent) string {
	if event.EmailID == "" {
		return "-"
	}
	return event.EmailID
}

// runDuration formats elapsed time, or "running" when the run has not finished
func runDuration(start time.Time, finished *time.Time) string {
	if finished == nil {
		return "running"
	}
	return finished.Sub(start).Round(time.Second).String()
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
