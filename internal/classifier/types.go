package classifier

// Mode is the routing decision for a single user turn.
type Mode string

const (
	ModeChat     Mode = "chat"     // conversational/meta, no task operations
	ModeCreate   Mode = "create"   // create a new task from the description
	ModeRetrieve Mode = "retrieve" // query existing tasks
)

// Confidence is the coarse certainty tier of a classification. Tiers are
// ordered: Low < Medium < High.
type Confidence int

const (
	ConfidenceLow Confidence = iota
	ConfidenceMedium
	ConfidenceHigh
)

// String implements fmt.Stringer for logging.
func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	default:
		return "low"
	}
}

// Result is the immutable output of a classification.
type Result struct {
	Mode       Mode
	Pattern    string // identifier of the rule that fired
	Confidence Confidence
}
