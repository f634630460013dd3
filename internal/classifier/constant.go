package classifier

// Pattern identifiers reported in Result.Pattern. Stable values: they show up
// in logs and tests.
const (
	PatternEmpty          = "empty_input"
	PatternGreeting       = "greeting"
	PatternCapability     = "capability_question"
	PatternRetrieveQuery  = "retrieve_query"      // interrogative/query cue + task noun
	PatternRetrieveNoun   = "retrieve_possessive" // possessive task noun alone
	PatternRetrieveFilt   = "retrieve_filter"     // due/label filter cue alone
	PatternCreateExplicit = "create_explicit"
	PatternDefaultCreate  = "default_create"
)
