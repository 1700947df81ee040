package pricing

// QuoteRequest is the preview request sent by the form page. Ids are
// normalised and unknown ones skipped, the same as for submissions.
type QuoteRequest struct {
	SessionID string   `json:"session_id"`
	AddonIDs  []string `json:"addon_ids" validate:"max=50"`
}

// QuoteResponse is the preview price for a selection
type QuoteResponse struct {
	Total          int64      `json:"total"`
	FormattedTotal string     `json:"formatted_total"`
	LineItems      []LineItem `json:"line_items"`
}

func QuoteResponseFromQuote(q Quote) *QuoteResponse {
	return &QuoteResponse{
		Total:          q.Total,
		FormattedTotal: FormatNOK(q.Total),
		LineItems:      q.LineItems,
	}
}
