// Package filter selects and orders messages from a chat archive.
package filter

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"skype-to-docx/model"
	"skype-to-docx/normalize"
	"skype-to-docx/stats"
)

// Mode is the matching strategy applied to normalized message content.
type Mode string

const (
	// ModeFirstWord selects messages whose first whitespace-delimited token
	// equals the configured word, case-sensitively.
	ModeFirstWord Mode = "first-word"
	// ModeReview selects messages containing an "N/10" rating token.
	ModeReview Mode = "review"
)

// ratingPattern matches "N/10" and "N.N/10" tokens on word boundaries.
// The value is not range-checked; "11/10" still counts as a rating.
var ratingPattern = regexp.MustCompile(`\b\d+(\.\d+)?/10\b`)

// Options captures the selection configuration.
type Options struct {
	Sender       string
	Conversation string // restricts the walk to one conversation when set
	Mode         Mode
	Word         string // first-word mode only

	// OnMessage, when set, is invoked once per visited message before any
	// predicate runs. Used for progress reporting.
	OnMessage func()
}

// Filter applies a validated selection to an archive.
type Filter struct {
	opts Options
}

// New validates the options and returns a Filter.
func New(opts Options) (*Filter, error) {
	if strings.TrimSpace(opts.Sender) == "" {
		return nil, fmt.Errorf("sender is required")
	}
	switch opts.Mode {
	case ModeFirstWord:
		if opts.Word == "" {
			return nil, fmt.Errorf("first-word mode requires a match word")
		}
	case ModeReview:
	default:
		return nil, fmt.Errorf("unknown selection mode %q", opts.Mode)
	}
	return &Filter{opts: opts}, nil
}

// Apply walks the archive and returns the selected records in ascending
// instant order, together with the run counters. Records whose timestamp
// failed to parse sort first; ties keep their original relative order.
// Per-message failures never abort the walk.
func (f *Filter) Apply(a model.Archive) ([]model.FilteredRecord, stats.Summary) {
	var (
		records []model.FilteredRecord
		summary stats.Summary
	)

	for _, convo := range a.Conversations {
		if f.opts.Conversation != "" && convo.ID != f.opts.Conversation {
			continue
		}
		summary.Conversations++

		for _, msg := range convo.MessageList {
			if f.opts.OnMessage != nil {
				f.opts.OnMessage()
			}
			summary.Scanned++

			if msg.Sender() != f.opts.Sender {
				summary.SkippedSender++
				continue
			}

			content := normalize.CleanContent(msg.Content)
			words := strings.Fields(content)
			if len(words) == 0 {
				summary.SkippedEmpty++
				continue
			}

			if !f.matches(content, words) {
				continue
			}

			rawTime := msg.OriginalArrivalTime
			if rawTime == "" {
				rawTime = "Unknown Date"
			}
			ts := normalize.ParseTimestamp(rawTime)
			if !ts.HasInstant {
				summary.TimestampFallbacks++
			}

			summary.Matched++
			records = append(records, model.FilteredRecord{
				DisplayDate: ts.Display,
				SentAt:      ts.Instant,
				HasInstant:  ts.HasInstant,
				Content:     content,
			})
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if !a.HasInstant || !b.HasInstant {
			return !a.HasInstant && b.HasInstant
		}
		return a.SentAt.Before(b.SentAt)
	})

	return records, summary
}

func (f *Filter) matches(content string, words []string) bool {
	switch f.opts.Mode {
	case ModeFirstWord:
		return words[0] == f.opts.Word
	case ModeReview:
		return ratingPattern.MatchString(content)
	}
	return false
}
