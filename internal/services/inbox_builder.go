package services

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/renato0307/inboxsim/internal/domain"
	"github.com/renato0307/inboxsim/internal/logging"
)

const (
	dateLabelLayout = "02 Jan"
	timeLabelLayout = "15:04"
	recentSlots     = 4
)

// recentOffsets are subtracted from now for the newest entries, oldest first
var recentOffsets = []time.Duration{
	4*time.Hour + 29*time.Minute,
	3*time.Hour + 15*time.Minute,
	2*time.Hour + 22*time.Minute,
	17 * time.Minute,
}

// BuildTimestamps returns n display labels ordered oldest to newest.
// The last four are clock times a few hours before now; the rest are
// dates 1 to 10 days back, never getting younger towards the front.
func BuildTimestamps(n int, rng *rand.Rand, now time.Time) []string {
	days := make([]int, max(n-recentSlots, 0))
	for i := range days {
		days[i] = 1 + rng.IntN(10)
	}
	slices.Sort(days)
	slices.Reverse(days)

	labels := make([]string, 0, len(days)+recentSlots)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for _, d := range days {
		labels = append(labels, today.AddDate(0, 0, -d).Format(dateLabelLayout))
	}
	for _, offset := range recentOffsets {
		labels = append(labels, now.Add(-offset).Format(timeLabelLayout))
	}
	return labels
}

// AssignTimestamps labels entries top-down by taking labels from the newest end.
// Entries left over once the labels run out get TimestampUnset.
func AssignTimestamps(entries []domain.Entry, labels []string) {
	remaining := slices.Clone(labels)
	for i := range entries {
		if len(remaining) == 0 {
			entries[i].DisplayTime = domain.TimestampUnset
			continue
		}
		entries[i].DisplayTime = remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
	}
}

// BeginSession builds the state of the session at index in the study.
// An inbox range that matches nothing yields an empty, running session.
func BeginSession(cfg domain.SessionConfig, index int, corpus *domain.Corpus, rng *rand.Rand, now time.Time) *domain.SessionState {
	inbox := corpus.Filter(cfg.Inbox.Range)
	var incoming []domain.Email
	if cfg.HasIncoming() {
		incoming = corpus.Filter(*cfg.Incoming)
	}

	if cfg.Inbox.Shuffle {
		shuffle(rng, inbox)
		shuffle(rng, incoming)
	}

	if p := cfg.Phishing; p != nil {
		inboxPhish := pickPhishing(corpus, p.InboxIDs, p.InboxCount, p.Shuffle, rng)
		inbox = injectPhishing(inbox, inboxPhish, p.InboxPositions, p.RandomPosition, rng)

		if cfg.HasIncoming() {
			incomingPhish := pickPhishing(corpus, p.IncomingIDs, p.IncomingCount, p.Shuffle, rng)
			incoming = injectPhishing(incoming, incomingPhish, p.IncomingPositions, p.RandomPosition, rng)
		}
	}

	entries := make([]domain.Entry, 0, len(inbox))
	for _, e := range inbox {
		entries = append(entries, domain.NewEntry(e))
	}
	AssignTimestamps(entries, BuildTimestamps(len(entries), rng, now))

	logging.Logger.Info("Session built",
		"session", cfg.Name,
		"inbox", len(entries),
		"incoming", len(incoming))

	return domain.NewSessionState(cfg, index, domain.NewInbox(entries), incoming)
}

// pickPhishing resolves candidate ids in list order, optionally shuffled, truncated to count
func pickPhishing(corpus *domain.Corpus, ids []int, count *int, shuffled bool, rng *rand.Rand) []domain.Email {
	candidates := corpus.Lookup(ids)
	if shuffled {
		shuffle(rng, candidates)
	}
	if count != nil && *count < len(candidates) {
		candidates = candidates[:max(*count, 0)]
	}
	return candidates
}

// injectPhishing merges decoys into base.
// Random placement draws a uniform insertion index per decoy. Fixed placement
// inserts the i-th decoy so it lands at 1-based position positions[i]
// (clamped to the end); decoys without a position are dropped.
func injectPhishing(base, decoys []domain.Email, positions []int, random bool, rng *rand.Rand) []domain.Email {
	out := slices.Clone(base)
	if random {
		for _, d := range decoys {
			out = slices.Insert(out, rng.IntN(len(out)+1), d)
		}
		return out
	}

	for i, pos := range positions {
		if i >= len(decoys) {
			break
		}
		idx := min(max(pos-1, 0), len(out))
		out = slices.Insert(out, idx, decoys[i])
	}
	return out
}

func shuffle(rng *rand.Rand, emails []domain.Email) {
	rng.Shuffle(len(emails), func(i, j int) {
		emails[i], emails[j] = emails[j], emails[i]
	})
}

// AdvanceSession returns the session after current, or done when current is the last one
func AdvanceSession(current int, sessions []domain.SessionConfig) (next int, done bool) {
	if current+1 < len(sessions) {
		return current + 1, false
	}
	return current, true
}
