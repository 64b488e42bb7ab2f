package domain

const (
	VerdictRejectedMessage = "Content violates community guidelines and cannot be posted."
	VerdictApprovedMessage = "Content approved for posting."
)

// Verdict is produced fresh for every submission and never stored.
type Verdict struct {
	Approved   bool            `json:"approved"`
	Flagged    bool            `json:"flagged"`
	Categories map[string]bool `json:"categories"`
	Message    string          `json:"message"`
}

func NewVerdict(flagged bool, categories map[string]bool) *Verdict {
	if categories == nil {
		categories = map[string]bool{}
	}
	msg := VerdictApprovedMessage
	if flagged {
		msg = VerdictRejectedMessage
	}
	return &Verdict{
		Approved:   !flagged,
		Flagged:    flagged,
		Categories: categories,
		Message:    msg,
	}
}

// FlaggedCategories lists the categories that tripped the classifier.
func (v *Verdict) FlaggedCategories() []string {
	var out []string
	for name, hit := range v.Categories {
		if hit {
			out = append(out, name)
		}
	}
	return out
}
