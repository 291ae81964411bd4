package domain

// TimestampUnset marks an entry that received no synthetic timestamp
const TimestampUnset = "-1"

// Entry is an email in view with its per-session mutable flags
type Entry struct {
	DisplayTime string
	Email       Email
	Read        bool
	Starred     bool
}

// NewEntry creates an entry seeded from the corpus defaults
func NewEntry(e Email) Entry {
	return Entry{
		DisplayTime: e.Time,
		Email:       e,
		Read:        e.Read,
		Starred:     e.Starred,
	}
}

// Inbox is the per-session email state store.
// It never logs; callers log exactly one event per participant action.
type Inbox struct {
	current *int // Selected email id, nil when nothing is selected
	entries []Entry
	history []string // Subjects of previously selected emails, most recent last
}

// NewInbox creates an inbox from ordered entries (top of the list first)
func NewInbox(entries []Entry) *Inbox {
	inbox := &Inbox{entries: make([]Entry, 0, len(entries))}
	seen := make(map[int]bool, len(entries))
	for _, e := range entries {
		if seen[e.Email.ID] {
			continue
		}
		seen[e.Email.ID] = true
		inbox.entries = append(inbox.entries, e)
	}
	return inbox
}

// Entries returns a copy of the visible entries in display order
func (in *Inbox) Entries() []Entry {
	out := make([]Entry, len(in.entries))
	copy(out, in.entries)
	return out
}

// Len returns the number of visible emails
func (in *Inbox) Len() int {
	return len(in.entries)
}

// Contains reports whether the email is visible
func (in *Inbox) Contains(id int) bool {
	return in.indexOf(id) >= 0
}

// Get returns the visible entry with the given id
func (in *Inbox) Get(id int) (Entry, bool) {
	idx := in.indexOf(id)
	if idx < 0 {
		return Entry{}, false
	}
	return in.entries[idx], true
}

// Current returns the selected entry, if any
func (in *Inbox) Current() (Entry, bool) {
	if in.current == nil {
		return Entry{}, false
	}
	return in.Get(*in.current)
}

// CurrentIndex returns the display position of the selection, or -1
func (in *Inbox) CurrentIndex() int {
	if in.current == nil {
		return -1
	}
	return in.indexOf(*in.current)
}

// History returns the previously selected subjects, most recent last
func (in *Inbox) History() []string {
	out := make([]string, len(in.history))
	copy(out, in.history)
	return out
}

// Select makes id the current email
func (in *Inbox) Select(id int) error {
	if !in.Contains(id) {
		return ErrEmailNotFound
	}
	if prev, ok := in.Current(); ok && prev.Email.ID != id {
		in.history = append(in.history, prev.Email.Title)
	}
	in.current = &id
	return nil
}

// SelectIndex selects the email at a display position
func (in *Inbox) SelectIndex(idx int) error {
	if idx < 0 || idx >= len(in.entries) {
		return ErrEmailNotFound
	}
	return in.Select(in.entries[idx].Email.ID)
}

// MarkRead sets the read flag
func (in *Inbox) MarkRead(id int) error {
	return in.update(id, func(e *Entry) { e.Read = true })
}

// MarkUnread clears the read flag
func (in *Inbox) MarkUnread(id int) error {
	return in.update(id, func(e *Entry) { e.Read = false })
}

// ToggleStar flips the starred flag and returns the new value
func (in *Inbox) ToggleStar(id int) (bool, error) {
	var starred bool
	err := in.update(id, func(e *Entry) {
		e.Starred = !e.Starred
		starred = e.Starred
	})
	return starred, err
}

// SetDisplayTime overrides the timestamp shown for an email
func (in *Inbox) SetDisplayTime(id int, display string) error {
	return in.update(id, func(e *Entry) { e.DisplayTime = display })
}

// InsertFront adds an incoming email at the top of the list.
// Duplicates are rejected so the id set stays unique.
func (in *Inbox) InsertFront(entry Entry) bool {
	if in.Contains(entry.Email.ID) {
		return false
	}
	in.entries = append([]Entry{entry}, in.entries...)
	return true
}

// Remove deletes an email and picks the next selection:
// the most recent history entry still visible, else the row that took the
// removed row's position (clamped), else nothing.
func (in *Inbox) Remove(id int) error {
	idx := in.indexOf(id)
	if idx < 0 {
		return ErrEmailNotFound
	}
	removed := in.entries[idx]
	in.entries = append(in.entries[:idx], in.entries[idx+1:]...)

	wasSelected := in.current != nil && *in.current == id
	in.history = dropTop(in.history, removed.Email.Title)

	if !wasSelected {
		return nil
	}
	in.current = nil

	if len(in.entries) == 0 {
		return nil
	}

	if n := len(in.history); n > 0 {
		subject := in.history[n-1]
		if row := in.indexOfSubject(subject); row >= 0 {
			next := in.entries[row].Email.ID
			in.current = &next
			in.history = dropTop(in.history, subject)
			return nil
		}
	}

	if idx >= len(in.entries) {
		idx = len(in.entries) - 1
	}
	next := in.entries[idx].Email.ID
	in.current = &next
	return nil
}

// UnreadCount counts visible emails that have not been read
func (in *Inbox) UnreadCount() int {
	count := 0
	for _, e := range in.entries {
		if !e.Read {
			count++
		}
	}
	return count
}

func (in *Inbox) update(id int, fn func(*Entry)) error {
	idx := in.indexOf(id)
	if idx < 0 {
		return ErrEmailNotFound
	}
	fn(&in.entries[idx])
	return nil
}

func (in *Inbox) indexOf(id int) int {
	for i, e := range in.entries {
		if e.Email.ID == id {
			return i
		}
	}
	return -1
}

func (in *Inbox) indexOfSubject(subject string) int {
	for i, e := range in.entries {
		if e.Email.Title == subject {
			return i
		}
	}
	return -1
}

// dropTop pops subject off the history only when it is the most recent entry
func dropTop(history []string, subject string) []string {
	if n := len(history); n > 0 && history[n-1] == subject {
		return history[:n-1]
	}
	return history
}
