package mcp

// ActionOutput reports the result of a tool that acts on a single resource
// and returns no body, such as complete or delete.
type ActionOutput struct {
	ID     string `json:"id"     jsonschema:"ID of the affected resource"`
	Result string `json:"result" jsonschema:"what happened to the resource"`
}

// validPriority reports whether p is an accepted Todoist priority.
// Zero means unset; 1 is lowest and 4 is highest.
func validPriority(p int) bool {
	return p >= 0 && p <= 4
}
