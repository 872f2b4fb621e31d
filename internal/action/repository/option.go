package repository

// CreateTicketOptions contains options for inserting a support ticket.
type CreateTicketOptions struct {
	Code        string
	Title       string
	Description string
	Priority    string
}

// CreateCtlAlertOptions contains options for inserting a unified alert row.
type CreateCtlAlertOptions struct {
	Severity      string
	ScoreValue    float64
	ScoreType     string
	Sentiment     string
	SubjectID     string
	SourceChannel string
}
