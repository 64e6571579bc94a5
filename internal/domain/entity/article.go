package entity

import "time"

// ArticleStatus tracks the lifecycle of a generated article.
type ArticleStatus string

const (
	// StatusReview marks a freshly written article awaiting a human decision.
	StatusReview ArticleStatus = "review"

	// StatusPublished marks an article approved for the site.
	StatusPublished ArticleStatus = "published"
)

// Queue entry statuses stored in the review queue file.
const (
	QueuePendingReview = "pending_review"
	QueueApproved      = "approved"
)

// ArticleDraft is generated marketing content prior to persistence.
// It is produced by the generator from a ScoredItem and a model response,
// and becomes a persisted article once the writer assigns it a slug.
type ArticleDraft struct {
	Title           string
	Headline        string
	Excerpt         string
	Body            string
	Category        Category
	PublishedAt     time.Time
	Author          string
	ReadMinutes     int
	FeaturedImage   string
	FeaturedImgAlt  string
	MetaTitle       string
	MetaDescription string
	RelatedGuides   []string
	RelatedNews     []string
	SourceURL       string
	SourceName      string
}

// ReviewQueueEntry is one element of the pending-review queue file.
// The queue file is the sole source of truth for queue membership; keeping it
// consistent with the content directory is the writer's responsibility.
type ReviewQueueEntry struct {
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	Status    string    `json:"status"`
}
