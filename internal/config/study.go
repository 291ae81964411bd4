package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/renato0307/inboxsim/internal/domain"
)

// IntList supports "5,1", [5, 1] or a bare 5 in the study document
type IntList []int

// UnmarshalYAML implements custom unmarshaling for IntList
func (l *IntList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		out := make([]int, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := parseInt(item.Value)
			if err != nil {
				return fmt.Errorf("line %d: %w", item.Line, err)
			}
			out = append(out, v)
		}
		*l = out
		return nil
	case yaml.ScalarNode:
		values, err := parseIntList(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*l = values
		return nil
	default:
		return fmt.Errorf("line %d: expected a comma-separated list of integers", node.Line)
	}
}

// flexInt accepts 3 and "3"
type flexInt int

func (f *flexInt) UnmarshalYAML(node *yaml.Node) error {
	v, err := parseInt(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*f = flexInt(v)
	return nil
}

// flexFloat accepts 0.5 and "0.5"
type flexFloat float64

func (f *flexFloat) UnmarshalYAML(node *yaml.Node) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(node.Value), 64)
	if err != nil {
		return fmt.Errorf("line %d: invalid number %q", node.Line, node.Value)
	}
	*f = flexFloat(v)
	return nil
}

type rawRange struct {
	Finish *flexInt `yaml:"finish"`
	Start  *flexInt `yaml:"start"`
}

type rawLegitEmails struct {
	EmailListRange *rawRange `yaml:"emailListRange"`
	IncomingRange  *rawRange `yaml:"incomingRange"`
	ShuffleEmails  bool      `yaml:"shuffleEmails"`
}

type rawPhishEmails struct {
	EmailList          IntList  `yaml:"emailList"`
	EmailListLocations IntList  `yaml:"emailListLocations"`
	EmailListNum       *flexInt `yaml:"emailListNum"`
	IncomingList       IntList  `yaml:"incomingList"`
	IncomingLocations  IntList  `yaml:"incomingLocations"`
	IncomingNum        *flexInt `yaml:"incomingNum"`
	RandomLoc          bool     `yaml:"randomLoc"`
	ShuffleEmails      bool     `yaml:"shuffleEmails"`
}

type rawStyle struct {
	Body       string `yaml:"body"`
	Header     string `yaml:"header"`
	HeaderIcon string `yaml:"headerIcon"`
	Sender     string `yaml:"sender"`
	SenderIcon string `yaml:"senderIcon"`
}

type rawSession struct {
	AudioNotification IntList         `yaml:"audioNotification"`
	CSSStyles         yaml.Node       `yaml:"cssStyles"`
	DeleteBtn         *bool           `yaml:"deleteBtn"`
	Duration          *flexFloat      `yaml:"duration"`
	EndSessionPopup   string          `yaml:"endSessionPopup"`
	HasPhishEmails    bool            `yaml:"hasPhishEmails"`
	IncomingEmails    bool            `yaml:"incomingEmails"`
	IncomingInterval  *flexFloat      `yaml:"incomingInterval"`
	LegitEmails       *rawLegitEmails `yaml:"legitEmails"`
	Name              string          `yaml:"name"`
	PhishEmails       *rawPhishEmails `yaml:"phishEmails"`
	PrimaryTaskHTML   string          `yaml:"primaryTaskHtml"`
	ReportBtn         *bool           `yaml:"reportBtn"`
	StarBtn           *bool           `yaml:"starBtn"`
	TimeCountDown     bool            `yaml:"timeCountDown"`
	UnreadBtn         *bool           `yaml:"unreadBtn"`
}

type rawStudy struct {
	EmailListLocation     string    `yaml:"emailListLocation"`
	EmailResourceLocation string    `yaml:"emailResourceLocation"`
	SaveLocation          string    `yaml:"saveLocation"`
	Sessions              yaml.Node `yaml:"sessions"`
	WelcomeText           string    `yaml:"welcomeText"`
}

// LoadStudy reads and validates a study document.
// Relative paths inside the document are resolved against the document's directory.
func LoadStudy(path string) (*domain.StudyConfig, error) {
	path = ExpandPath(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read study file: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	return ParseStudy(data, filepath.Dir(absPath))
}

// ParseStudy parses a study document. baseDir anchors relative paths (empty keeps them as-is).
func ParseStudy(data []byte, baseDir string) (*domain.StudyConfig, error) {
	var raw rawStudy
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	var problems []error
	fail := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf("%w: %s", domain.ErrInvalidConfig, fmt.Sprintf(format, args...)))
	}

	if strings.TrimSpace(raw.SaveLocation) == "" {
		fail("saveLocation is required")
	}
	if strings.TrimSpace(raw.EmailListLocation) == "" {
		fail("emailListLocation is required")
	}

	study := &domain.StudyConfig{
		EmailListLocation:     resolvePath(baseDir, raw.EmailListLocation),
		EmailResourceLocation: resolvePath(baseDir, raw.EmailResourceLocation),
		SaveLocation:          resolvePath(baseDir, raw.SaveLocation),
	}
	if raw.WelcomeText != "" {
		welcome := raw.WelcomeText
		study.WelcomeText = &welcome
	}

	sessions, err := decodeSessions(&raw.Sessions)
	if err != nil {
		problems = append(problems, err)
	}
	if err == nil && len(sessions) == 0 {
		fail("at least one session is required")
	}

	seen := make(map[string]bool, len(sessions))
	for _, rs := range sessions {
		if seen[rs.name] {
			fail("duplicate session name %q", rs.name)
			continue
		}
		seen[rs.name] = true

		cfg, errs := buildSession(rs.name, rs.raw, baseDir)
		problems = append(problems, errs...)
		study.Sessions = append(study.Sessions, cfg)
	}

	if len(problems) > 0 {
		return nil, errors.Join(problems...)
	}
	return study, nil
}

type namedSession struct {
	name string
	raw  rawSession
}

// decodeSessions keeps document order for both mapping and sequence forms
func decodeSessions(node *yaml.Node) ([]namedSession, error) {
	var out []namedSession

	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			var rs rawSession
			if err := value.Decode(&rs); err != nil {
				return nil, fmt.Errorf("%w: session %q: %v", domain.ErrInvalidConfig, key.Value, err)
			}
			name := rs.Name
			if name == "" {
				name = key.Value
			}
			out = append(out, namedSession{name: name, raw: rs})
		}
	case yaml.SequenceNode:
		for i, value := range node.Content {
			var rs rawSession
			if err := value.Decode(&rs); err != nil {
				return nil, fmt.Errorf("%w: session #%d: %v", domain.ErrInvalidConfig, i+1, err)
			}
			name := rs.Name
			if name == "" {
				name = fmt.Sprintf("session%d", i+1)
			}
			out = append(out, namedSession{name: name, raw: rs})
		}
	default:
		return nil, fmt.Errorf("%w: sessions must be a mapping or a list", domain.ErrInvalidConfig)
	}

	return out, nil
}

func buildSession(name string, rs rawSession, baseDir string) (domain.SessionConfig, []error) {
	var problems []error
	fail := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf("%w: session %q: %s",
			domain.ErrInvalidConfig, name, fmt.Sprintf(format, args...)))
	}

	cfg := domain.SessionConfig{
		AlertMinutes:  []int(rs.AudioNotification),
		Buttons:       domain.AllButtons(),
		Name:          name,
		ShowCountdown: rs.TimeCountDown,
	}
	cfg.Buttons.Delete = BoolOr(rs.DeleteBtn, true)
	cfg.Buttons.Report = BoolOr(rs.ReportBtn, true)
	cfg.Buttons.Star = BoolOr(rs.StarBtn, true)
	cfg.Buttons.Unread = BoolOr(rs.UnreadBtn, true)

	if rs.Duration == nil || minutes(float64(*rs.Duration)) < time.Second {
		fail("duration must be at least one second")
	} else {
		cfg.Duration = minutes(float64(*rs.Duration))
	}

	if rs.LegitEmails == nil || rs.LegitEmails.EmailListRange == nil {
		fail("legitEmails.emailListRange is required")
	} else {
		r, err := buildRange(rs.LegitEmails.EmailListRange)
		if err != nil {
			fail("legitEmails.emailListRange: %v", err)
		}
		cfg.Inbox = domain.InboxRule{Range: r, Shuffle: rs.LegitEmails.ShuffleEmails}
	}

	if rs.IncomingEmails {
		if rs.LegitEmails == nil || rs.LegitEmails.IncomingRange == nil {
			fail("incomingEmails requires legitEmails.incomingRange")
		} else if r, err := buildRange(rs.LegitEmails.IncomingRange); err != nil {
			fail("legitEmails.incomingRange: %v", err)
		} else {
			cfg.Incoming = &r
		}

		if rs.IncomingInterval == nil || minutes(float64(*rs.IncomingInterval)) < time.Second {
			fail("incomingEmails requires an incomingInterval of at least one second")
		} else {
			interval := minutes(float64(*rs.IncomingInterval))
			cfg.IncomingInterval = &interval
		}
	}

	if rs.HasPhishEmails {
		rule, errs := buildPhishing(rs.PhishEmails, rs.IncomingEmails)
		for _, err := range errs {
			fail("%v", err)
		}
		cfg.Phishing = rule
	}

	styles, err := decodeStyles(&rs.CSSStyles)
	if err != nil {
		fail("cssStyles: %v", err)
	}
	cfg.Styles = styles

	if rs.PrimaryTaskHTML != "" {
		task := resolvePath(baseDir, rs.PrimaryTaskHTML)
		cfg.PrimaryTask = &task
	}
	if rs.EndSessionPopup != "" {
		msg := rs.EndSessionPopup
		cfg.EndMessage = &msg
	}

	for _, m := range cfg.AlertMinutes {
		if m < 0 {
			fail("audioNotification minutes must not be negative")
			break
		}
	}

	return cfg, problems
}

func buildRange(r *rawRange) (domain.IDRange, error) {
	if r.Start == nil || r.Finish == nil {
		return domain.IDRange{}, errors.New("start and finish are required")
	}
	out := domain.IDRange{Start: int(*r.Start), Finish: int(*r.Finish)}
	if out.Start > out.Finish {
		return out, fmt.Errorf("start %d is after finish %d", out.Start, out.Finish)
	}
	return out, nil
}

func buildPhishing(p *rawPhishEmails, incoming bool) (*domain.PhishingRule, []error) {
	if p == nil {
		return nil, []error{errors.New("hasPhishEmails requires phishEmails")}
	}

	var problems []error
	rule := &domain.PhishingRule{
		InboxIDs:       []int(p.EmailList),
		RandomPosition: p.RandomLoc,
		Shuffle:        p.ShuffleEmails,
	}
	if incoming {
		rule.IncomingIDs = []int(p.IncomingList)
	}

	if len(rule.InboxIDs) == 0 && len(rule.IncomingIDs) == 0 {
		problems = append(problems, errors.New("phishEmails.emailList is empty"))
	}

	if p.EmailListNum != nil {
		n := int(*p.EmailListNum)
		if n < 0 {
			problems = append(problems, errors.New("phishEmails.emailListNum must not be negative"))
		}
		rule.InboxCount = &n
	}
	if p.IncomingNum != nil {
		n := int(*p.IncomingNum)
		if n < 0 {
			problems = append(problems, errors.New("phishEmails.incomingNum must not be negative"))
		}
		rule.IncomingCount = &n
	}

	if !rule.RandomPosition {
		rule.InboxPositions = []int(p.EmailListLocations)
		if incoming {
			rule.IncomingPositions = []int(p.IncomingLocations)
		}
		for _, pos := range append(append([]int{}, rule.InboxPositions...), rule.IncomingPositions...) {
			if pos < 1 {
				problems = append(problems, fmt.Errorf("phishing position %d must be 1 or greater", pos))
			}
		}
	}

	return rule, problems
}

// decodeStyles accepts a mapping or an empty value (empty string or null) meaning no styles
func decodeStyles(node *yaml.Node) (map[string]domain.CategoryStyle, error) {
	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.ScalarNode:
		if strings.TrimSpace(node.Value) == "" || node.Tag == "!!null" {
			return nil, nil
		}
		return nil, fmt.Errorf("line %d: expected a mapping of categories", node.Line)
	case yaml.MappingNode:
		var raw map[string]rawStyle
		if err := node.Decode(&raw); err != nil {
			return nil, err
		}
		styles := make(map[string]domain.CategoryStyle, len(raw))
		for category, s := range raw {
			styles[category] = domain.CategoryStyle{
				Body:       s.Body,
				Header:     s.Header,
				HeaderIcon: s.HeaderIcon,
				Sender:     s.Sender,
				SenderIcon: s.SenderIcon,
			}
		}
		return styles, nil
	default:
		return nil, fmt.Errorf("line %d: expected a mapping of categories", node.Line)
	}
}

// minutes converts a minute count to a duration rounded to whole seconds
func minutes(m float64) time.Duration {
	return time.Duration(math.Round(m*60)) * time.Second
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return v, nil
}

// parseIntList splits a comma-separated list, ignoring blanks
func parseIntList(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, ",")
	result := make([]int, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed == "" {
			continue
		}
		v, err := parseInt(trimmed)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}
