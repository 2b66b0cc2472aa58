package localstore

// Storage key scheme. The literal key shapes are load-bearing: existing
// data written by earlier versions of the app is addressed by exactly
// these strings.
const (
	// UserTagsKey holds the user-global tag definitions.
	UserTagsKey = "user_defined_tags"
	// HabitsKey holds the habit tracker list.
	HabitsKey = "dynamic-habits-v1"
	// TemplateTagsKey holds the recurring ("typical day") time-grid.
	TemplateTagsKey = "hourViewTemplateTags"
	// DailyLogsKey holds the system-log feed.
	DailyLogsKey = "daily_logs"
	// VariablesKey holds the daily-log variable definitions.
	VariablesKey = "daily_log_variables"
)

// JournalsListKey addresses the journal metadata list for a date.
func JournalsListKey(dateKey string) string { return "journals_list_" + dateKey }

// JournalContentKey addresses a journal body by journal id. Note the key is
// derivable only from the id, never from a date.
func JournalContentKey(journalID string) string { return "journal_content_" + journalID }

// LegacyJournalKey addresses the pre-migration single journal of a date.
func LegacyJournalKey(dateKey string) string { return "journal_" + dateKey }

// TodosKey addresses the todo list for a date.
func TodosKey(dateKey string) string { return "todos_" + dateKey }

// DayTagsKey addresses the specific-day time-grid for a date.
func DayTagsKey(dateKey string) string { return "day_tags_" + dateKey }

// ValuesKey addresses the daily-log variable values for a date.
func ValuesKey(dateKey string) string { return "daily_log_values_" + dateKey }
