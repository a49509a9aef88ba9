package entities

// QuestSource identifies what a quest was generated from.
type QuestSource string

// Quest sources.
const (
	QuestSourceIssue QuestSource = "issue"
	QuestSourcePR    QuestSource = "pr"
)

// QuestStatus is the lifecycle state of a quest. Transitions only move
// forward: new -> in_progress -> completed.
type QuestStatus string

// Quest statuses.
const (
	QuestStatusNew        QuestStatus = "new"
	QuestStatusInProgress QuestStatus = "in_progress"
	QuestStatusCompleted  QuestStatus = "completed"
)

// rank orders statuses for the forward-only transition check.
func (s QuestStatus) rank() int {
	switch s {
	case QuestStatusNew:
		return 0
	case QuestStatusInProgress:
		return 1
	case QuestStatusCompleted:
		return 2
	default:
		return -1
	}
}

// CanTransitionTo reports whether moving to next is a legal forward step.
func (s QuestStatus) CanTransitionTo(next QuestStatus) bool {
	cur, nxt := s.rank(), next.rank()
	return cur >= 0 && nxt >= 0 && nxt > cur
}

// Quest maps an issue or pull request to a playable objective. Difficulty is
// 1-20 for issue quests; PR quests store the PR boss level (1-50).
type Quest struct {
	ID           string      `json:"id"`
	WorldID      string      `json:"world_id"`
	SourceType   QuestSource `json:"source_type"`
	SourceNumber int         `json:"source_number"`
	Title        string      `json:"title"`
	Difficulty   int         `json:"difficulty"`
	Status       QuestStatus `json:"status"`
}
