package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/renato0307/inboxsim/internal/domain"
	"github.com/renato0307/inboxsim/internal/logging"
)

// Columns are the required corpus header names
var Columns = []string{"ID", "name", "from", "to", "title", "content", "attachment", "star", "time", "readState", "category"}

// CSVLoader implements ports.CorpusLoader for the study's email list
type CSVLoader struct{}

// NewCSVLoader creates a new corpus loader
func NewCSVLoader() *CSVLoader {
	return &CSVLoader{}
}

// Load reads and indexes the corpus file
func (l *CSVLoader) Load(path string) (*domain.Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open email list: %w", err)
	}
	defer f.Close()

	corpus, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logging.Logger.Debug("Corpus loaded", "path", path, "emails", corpus.Len())
	return corpus, nil
}

// Parse reads a corpus from CSV. Extra columns are ignored; missing ones are a configuration error.
func Parse(r io.Reader) (*domain.Corpus, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: email list is empty", domain.ErrInvalidConfig)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}

	var missing []string
	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: email list is missing columns: %s", domain.ErrInvalidConfig, strings.Join(missing, ", "))
	}

	var emails []domain.Email
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
		}

		get := func(col string) string {
			i := index[col]
			if i >= len(record) {
				return ""
			}
			return record[i]
		}

		id, err := strconv.Atoi(strings.TrimSpace(get("ID")))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: invalid ID %q", domain.ErrInvalidConfig, line, get("ID"))
		}
		starred, err := ParseBool(get("star"))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: star: %v", domain.ErrInvalidConfig, line, err)
		}
		read, err := ParseBool(get("readState"))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: readState: %v", domain.ErrInvalidConfig, line, err)
		}

		emails = append(emails, domain.Email{
			Attachments: domain.ParseAttachments(get("attachment")),
			Category:    strings.TrimSpace(get("category")),
			Content:     strings.TrimSpace(get("content")),
			From:        get("from"),
			ID:          id,
			Name:        get("name"),
			Read:        read,
			Starred:     starred,
			Time:        get("time"),
			Title:       get("title"),
			To:          get("to"),
		})
	}

	return domain.NewCorpus(emails)
}

// ParseBool accepts true/false, 1/0 and yes/no in any case; empty means false
func ParseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "false", "0", "no":
		return false, nil
	case "true", "1", "yes":
		return true, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", raw)
	}
}
