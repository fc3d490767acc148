package entity

// Action selects which pipeline behavior the caller wants.
type Action string

const (
	ActionClassifyDispute   Action = "classify_dispute"
	ActionExplainCredit     Action = "explain_credit"
	ActionGenerateLetter    Action = "generate_letter"
	ActionAnalyzeReport     Action = "analyze_report"
	ActionFullOrchestration Action = "full_orchestration"
)

type DisputeRequest struct {
	Action  Action          `json:"action"`
	Input   string          `json:"input"`
	Context *DisputeContext `json:"context,omitempty"`
	UserID  string          `json:"userId"`
	Stream  bool            `json:"stream,omitempty"`
}

type DisputeContext struct {
	DisputeType  string            `json:"disputeType,omitempty"`
	AccountType  string            `json:"accountType,omitempty"`
	Bureau       string            `json:"bureau,omitempty"`
	ClientData   map[string]string `json:"clientData,omitempty"`
	ScoreHistory []ScorePoint      `json:"scoreHistory,omitempty"`
	DisputeItems []DisputeItem     `json:"disputeItems,omitempty"`
}

type DisputeItem struct {
	CreditorName  string  `json:"creditorName,omitempty"`
	AccountNumber string  `json:"accountNumber,omitempty"`
	Balance       float64 `json:"balance,omitempty"`
	Status        string  `json:"status,omitempty"`
	Bureau        string  `json:"bureau,omitempty"`
	DisputeReason string  `json:"disputeReason,omitempty"`
}

type ScorePoint struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

// FirstItem returns the leading dispute item, or nil when the context has none.
func (c *DisputeContext) FirstItem() *DisputeItem {
	if c == nil || len(c.DisputeItems) == 0 {
		return nil
	}
	return &c.DisputeItems[0]
}
