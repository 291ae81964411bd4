package domain

import (
	"errors"
	"fmt"
	"time"
)

// IDRange is an inclusive range of corpus ids
type IDRange struct {
	Finish int
	Start  int
}

// Contains reports whether id falls in the range
func (r IDRange) Contains(id int) bool {
	return id >= r.Start && id <= r.Finish
}

// Size returns the number of ids covered by the range
func (r IDRange) Size() int {
	if r.Finish < r.Start {
		return 0
	}
	return r.Finish - r.Start + 1
}

// InboxRule describes the legitimate emails of a session
type InboxRule struct {
	Range   IDRange
	Shuffle bool
}

// PhishingRule describes how decoy emails are mixed into a session.
// Nil counts mean "use every candidate"; nil positions with RandomPosition false
// mean no fixed placement for that list.
type PhishingRule struct {
	IncomingCount     *int
	IncomingIDs       []int
	IncomingPositions []int
	InboxCount        *int
	InboxIDs          []int
	InboxPositions    []int
	RandomPosition    bool
	Shuffle           bool
}

// CategoryStyle holds the CSS-like presentation rules for one email category
type CategoryStyle struct {
	Body       string
	Header     string
	HeaderIcon string
	Sender     string
	SenderIcon string
}

// Buttons controls which participant actions a session exposes
type Buttons struct {
	Delete bool
	Report bool
	Star   bool
	Unread bool
}

// AllButtons returns the default button set (everything visible)
func AllButtons() Buttons {
	return Buttons{Delete: true, Report: true, Star: true, Unread: true}
}

// SessionConfig is one timed phase of a study
type SessionConfig struct {
	AlertMinutes     []int
	Buttons          Buttons
	Duration         time.Duration
	EndMessage       *string
	Inbox            InboxRule
	Incoming         *IDRange
	IncomingInterval *time.Duration
	Name             string
	Phishing         *PhishingRule
	PrimaryTask      *string
	ShowCountdown    bool
	Styles           map[string]CategoryStyle
}

// HasIncoming reports whether the session injects emails on a timer
func (s SessionConfig) HasIncoming() bool {
	return s.Incoming != nil && s.IncomingInterval != nil
}

// IsAlertMinute reports whether a whole-minute mark should trigger an audible alert
func (s SessionConfig) IsAlertMinute(minutes int) bool {
	for _, m := range s.AlertMinutes {
		if m == minutes {
			return true
		}
	}
	return false
}

// StyleFor returns the presentation rules for a category, if the session defines any
func (s SessionConfig) StyleFor(category string) (CategoryStyle, bool) {
	if s.Styles == nil {
		return CategoryStyle{}, false
	}
	style, ok := s.Styles[category]
	return style, ok
}

// StudyConfig is one loaded study document
type StudyConfig struct {
	EmailListLocation     string
	EmailResourceLocation string
	SaveLocation          string
	Sessions              []SessionConfig
	WelcomeText           *string
}

// SessionIndex returns the position of the named session
func (s *StudyConfig) SessionIndex(name string) (int, error) {
	for i, sess := range s.Sessions {
		if sess.Name == name {
			return i, nil
		}
	}
	return -1, ErrSessionNotFound
}

// Validate checks the study's references into the corpus.
// Every problem is reported, each wrapping ErrInvalidConfig.
func (s *StudyConfig) Validate(corpus *Corpus) error {
	var problems []error
	categories := corpus.Categories()

	for _, sess := range s.Sessions {
		for category := range sess.Styles {
			if !categories[category] {
				problems = append(problems, fmt.Errorf("%w: session %q: unknown category %q in cssStyles",
					ErrInvalidConfig, sess.Name, category))
			}
		}

		if sess.Phishing != nil {
			ids := append(append([]int{}, sess.Phishing.InboxIDs...), sess.Phishing.IncomingIDs...)
			for _, id := range ids {
				if _, ok := corpus.Get(id); !ok {
					problems = append(problems, fmt.Errorf("%w: session %q: phishing email %d not in corpus",
						ErrInvalidConfig, sess.Name, id))
				}
			}
		}
	}

	return errors.Join(problems...)
}
