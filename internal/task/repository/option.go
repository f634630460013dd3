package repository

// CreateTaskOptions carries the fields for creating a task. DueString stays
// natural language ("tomorrow", "next Monday"); the provider parses it.
type CreateTaskOptions struct {
	Content     string
	Description string
	Priority    int
	DueString   string
	Labels      []string
}

// ListTasksOptions narrows a task listing. Filter uses the provider's filter
// syntax; Label and ProjectID are plain equality filters.
type ListTasksOptions struct {
	Filter    string
	Label     string
	ProjectID string
}
