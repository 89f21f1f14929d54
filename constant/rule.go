package constant

type RuleStatus int

const (
	RuleStatusActive  RuleStatus = 1
	RuleStatusExpired RuleStatus = 2
)

// RuleDateLayout is the layout of rule start and end dates.
const RuleDateLayout = "2006-01-02"
