package todoist

// Due describes when a task is due. Todoist returns both the raw date and
// the human-readable string the task was created with.
type Due struct {
	Date        string `json:"date"`
	String      string `json:"string"`
	Datetime    string `json:"datetime,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
	IsRecurring bool   `json:"is_recurring"`
}

// Duration is the expected amount of time a task takes.
type Duration struct {
	Amount int    `json:"amount"`
	Unit   string `json:"unit"`
}

// Task is a Todoist task as returned by the REST v2 API.
type Task struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"project_id"`
	SectionID    string    `json:"section_id,omitempty"`
	ParentID     string    `json:"parent_id,omitempty"`
	Content      string    `json:"content"`
	Description  string    `json:"description,omitempty"`
	IsCompleted  bool      `json:"is_completed"`
	Labels       []string  `json:"labels,omitempty"`
	Priority     int       `json:"priority"`
	Due          *Due      `json:"due,omitempty"`
	Duration     *Duration `json:"duration,omitempty"`
	Order        int       `json:"order"`
	URL          string    `json:"url"`
	CommentCount int       `json:"comment_count"`
	CreatedAt    string    `json:"created_at"`
	CreatorID    string    `json:"creator_id,omitempty"`
	AssigneeID   string    `json:"assignee_id,omitempty"`
}

// Project is a Todoist project.
type Project struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ParentID       string `json:"parent_id,omitempty"`
	Color          string `json:"color"`
	Order          int    `json:"order"`
	CommentCount   int    `json:"comment_count"`
	IsShared       bool   `json:"is_shared"`
	IsFavorite     bool   `json:"is_favorite"`
	IsInboxProject bool   `json:"is_inbox_project"`
	ViewStyle      string `json:"view_style,omitempty"`
	URL            string `json:"url"`
}

// Section is a group of tasks within a project.
type Section struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
	Order     int    `json:"order"`
}

// Label is a personal label that can be attached to tasks.
type Label struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color,omitempty"`
	Order      int    `json:"order"`
	IsFavorite bool   `json:"is_favorite"`
}

// Comment is a note attached to a task or a project.
type Comment struct {
	ID        string `json:"id"`
	TaskID    string `json:"task_id,omitempty"`
	ProjectID string `json:"project_id,omitempty"`
	Content   string `json:"content"`
	PostedAt  string `json:"posted_at"`
}
