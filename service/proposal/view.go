package proposal

import (
	"html/template"
	"time"
)

type (
	// Indicator quorum progress indicator
	Indicator struct {
		// Value circular progress fill, never above 100
		Value float64
		// Badge fill truncated to integer, eg "62%"
		Badge string
		// Label tooltip text
		Label string
	}

	Choice struct {
		Label   string
		Score   string
		Percent string
		Leading bool
	}

	// Stats proposal statistics summary
	Stats struct {
		State      string
		Start      time.Time
		End        time.Time
		VotingOver bool
		Remaining  string
		Choices    []Choice
		Votes      string
		// Quorum "score / quorum" in stalk, empty until loaded
		Quorum   string
		Link     string
		ShowLink bool
	}

	// Content visual layout of a proposal
	Content struct {
		Title     string
		Stats     Stats
		Indicator *Indicator
		// Markdown body with ipfs links rewritten, the markdown renderer input
		Markdown string
		// Body rendered markdown
		Body template.HTML

		rendered bool
	}
)
