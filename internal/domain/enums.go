package domain

type NodeType string

const (
	NodeBudgetItem NodeType = "budget_item"
	NodeMilestone  NodeType = "milestone"
)

// DependencyType governs which pair of endpoints a dependency's lag is
// measured between.
type DependencyType string

const (
	FinishToStart  DependencyType = "FS"
	StartToStart   DependencyType = "SS"
	FinishToFinish DependencyType = "FF"
	StartToFinish  DependencyType = "SF"
)

// ValidDependencyTypes is the canonical set of accepted relationship strings.
var ValidDependencyTypes = map[string]bool{
	"FS": true, "SS": true, "FF": true, "SF": true,
}

// TimingMethod describes where a budget item's dates come from.
// Milestone-driven items treat their dates as outputs of the timeline
// calculation; manually timed items treat them as inputs.
type TimingMethod string

const (
	TimingManual    TimingMethod = "manual"
	TimingMilestone TimingMethod = "milestone"
)

type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectArchived ProjectStatus = "archived"
)

type ItemStatus string

const (
	ItemPlanned    ItemStatus = "planned"
	ItemInProgress ItemStatus = "in_progress"
	ItemComplete   ItemStatus = "complete"
	ItemCancelled  ItemStatus = "cancelled"
)

type MilestoneStatus string

const (
	MilestonePending   MilestoneStatus = "pending"
	MilestoneAchieved  MilestoneStatus = "achieved"
	MilestoneCancelled MilestoneStatus = "cancelled"
)

type CalcTrigger string

const (
	TriggerManual            CalcTrigger = "MANUAL"
	TriggerItemChanged       CalcTrigger = "ITEM_CHANGED"
	TriggerDependencyChanged CalcTrigger = "DEPENDENCY_CHANGED"
)
