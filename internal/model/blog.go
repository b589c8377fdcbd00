package model

// Blog represents a blog row in the database. Creator is only populated by
// queries that join the users table.
type Blog struct {
	ID        int    `json:"id" db:"id"`
	Title     string `json:"title" db:"title"`
	Body      string `json:"body" db:"body"`
	CreatorID int    `json:"creator_id" db:"creator_id"`
	Creator   *User  `json:"-"`
}

// BlogInput represents a create or update blog request
type BlogInput struct {
	Title string `json:"title" binding:"required,max=255"`
	Body  string `json:"body" binding:"required,max=1000"`
}

// BlogInfo represents the public view of a blog with its creator
type BlogInfo struct {
	ID      int      `json:"id"`
	Title   string   `json:"title"`
	Body    string   `json:"body"`
	Creator UserInfo `json:"creator"`
}

// BlogSummary represents a blog without its creator, for nesting under a user
type BlogSummary struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Info returns the public view of the blog. Creator must be populated.
func (b *Blog) Info() BlogInfo {
	info := BlogInfo{ID: b.ID, Title: b.Title, Body: b.Body}
	if b.Creator != nil {
		info.Creator = b.Creator.Info()
	}
	return info
}

// Summary returns the blog without its creator.
func (b *Blog) Summary() BlogSummary {
	return BlogSummary{ID: b.ID, Title: b.Title, Body: b.Body}
}
