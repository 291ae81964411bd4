package domain

import (
	"strconv"
	"strings"
)

// SelfRecipient is how the corpus refers to the participant in the "to" column
const SelfRecipient = "me"

// phishingAttachmentPrefix marks a decoy attachment in the corpus
const phishingAttachmentPrefix = "P_"

// Attachment is a file attached to an email
type Attachment struct {
	Name     string
	Phishing bool
}

// Email is one row of the study corpus (immutable during a run)
type Email struct {
	Attachments []Attachment
	Category    string
	Content     string // Body file name under <resources>/html
	From        string
	ID          int
	Name        string // Sender display name
	Read        bool
	Starred     bool
	Time        string
	Title       string
	To          string
}

// ParseAttachments converts the corpus attachment column into attachments.
// "None" or an empty value means no attachments; a "P_" prefix marks a phishing decoy.
func ParseAttachments(raw string) []Attachment {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "None" {
		return nil
	}

	var attachments []Attachment
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if strings.HasPrefix(name, phishingAttachmentPrefix) {
			attachments = append(attachments, Attachment{Name: name[len(phishingAttachmentPrefix):], Phishing: true})
			continue
		}
		attachments = append(attachments, Attachment{Name: name})
	}
	return attachments
}

// Recipients splits the "to" column into individual recipients
func (e Email) Recipients() []string {
	var result []string
	for _, r := range strings.Split(e.To, ",") {
		if trimmed := strings.TrimSpace(r); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ReplyAllRecipients returns the recipients other than the participant
func (e Email) ReplyAllRecipients() []string {
	var result []string
	for _, r := range e.Recipients() {
		if r != SelfRecipient {
			result = append(result, r)
		}
	}
	return result
}

// HasOtherRecipients reports whether reply-to-all makes sense for this email
func (e Email) HasOtherRecipients() bool {
	return len(e.ReplyAllRecipients()) > 0
}

// Corpus is the fixed table of candidate emails for a study
type Corpus struct {
	byID   map[int]int
	emails []Email
}

// NewCorpus builds a corpus, rejecting duplicate ids
func NewCorpus(emails []Email) (*Corpus, error) {
	c := &Corpus{
		byID:   make(map[int]int, len(emails)),
		emails: make([]Email, 0, len(emails)),
	}
	for _, e := range emails {
		if _, exists := c.byID[e.ID]; exists {
			return nil, &DuplicateEmailError{ID: e.ID}
		}
		c.byID[e.ID] = len(c.emails)
		c.emails = append(c.emails, e)
	}
	return c, nil
}

// DuplicateEmailError reports a corpus id that appears more than once
type DuplicateEmailError struct {
	ID int
}

func (e *DuplicateEmailError) Error() string {
	return "duplicate email id in corpus: " + strconv.Itoa(e.ID)
}

func (e *DuplicateEmailError) Unwrap() error {
	return ErrInvalidConfig
}

// Emails returns all emails in corpus order
func (c *Corpus) Emails() []Email {
	out := make([]Email, len(c.emails))
	copy(out, c.emails)
	return out
}

// Len returns the number of emails
func (c *Corpus) Len() int {
	return len(c.emails)
}

// Get returns the email with the given id
func (c *Corpus) Get(id int) (Email, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Email{}, false
	}
	return c.emails[idx], true
}

// Filter returns emails whose id falls in the range, in corpus order
func (c *Corpus) Filter(r IDRange) []Email {
	var out []Email
	for _, e := range c.emails {
		if r.Contains(e.ID) {
			out = append(out, e)
		}
	}
	return out
}

// Lookup returns the emails for ids in the given order, skipping unknown ids
func (c *Corpus) Lookup(ids []int) []Email {
	var out []Email
	for _, id := range ids {
		if e, ok := c.Get(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// Categories returns the set of categories present in the corpus
func (c *Corpus) Categories() map[string]bool {
	categories := make(map[string]bool)
	for _, e := range c.emails {
		if e.Category != "" {
			categories[e.Category] = true
		}
	}
	return categories
}
