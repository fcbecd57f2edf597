package domain

// ArticleStatus represents the publication state of an article.
type ArticleStatus string

const (
	ArticleDraft       ArticleStatus = "DRAFT"
	ArticlePublished   ArticleStatus = "PUBLISHED"
	ArticleUnpublished ArticleStatus = "UNPUBLISHED"
)

// Valid reports whether s is one of the known article statuses.
func (s ArticleStatus) Valid() bool {
	switch s {
	case ArticleDraft, ArticlePublished, ArticleUnpublished:
		return true
	}
	return false
}

// HeroImage is the lead image shown above an article.
type HeroImage struct {
	URL     string `json:"url"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// ContentBlock is one element of an article body. The set of populated
// fields depends on Type (paragraph, heading, orderedList, unorderedList,
// image, link, section).
type ContentBlock struct {
	Type           string         `json:"type"`
	Content        string         `json:"content,omitempty"`
	Level          int            `json:"level,omitempty"`
	Items          []string       `json:"items,omitempty"`
	URL            string         `json:"url,omitempty"`
	Alt            string         `json:"alt,omitempty"`
	Caption        string         `json:"caption,omitempty"`
	LinkURL        string         `json:"linkUrl,omitempty"`
	LinkText       string         `json:"linkText,omitempty"`
	OpenInNewTab   bool           `json:"openInNewTab,omitempty"`
	SectionTitle   string         `json:"sectionTitle,omitempty"`
	SectionContent []ContentBlock `json:"sectionContent,omitempty"`
	Spacing        string         `json:"spacing,omitempty"`
}

// ContentStructure is the article body: a typed list of blocks.
type ContentStructure struct {
	Type   string         `json:"type"`
	Blocks []ContentBlock `json:"blocks"`
}

// Section is a legacy flat content section kept for older articles.
type Section struct {
	Title        string   `json:"title,omitempty"`
	Content      string   `json:"content,omitempty"`
	BulletPoints []string `json:"bulletPoints,omitempty"`
}

// ContactInfo holds the business contact details attached to an article.
type ContactInfo struct {
	WebsiteURL         string   `json:"websiteUrl,omitempty"`
	BookingPhone       string   `json:"bookingPhone,omitempty"`
	ConsultationPhones []string `json:"consultationPhones,omitempty"`
}

// ArticleMetadata is the authorship block maintained by the upstream API.
type ArticleMetadata struct {
	Author      string   `json:"author"`
	AuthorID    int64    `json:"authorId"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
	PublishedAt string   `json:"publishedAt,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Category    string   `json:"category,omitempty"`
}

// Article is a content record owned entirely by the upstream API; the
// gateway fetches, displays, and resubmits it without holding an
// authoritative copy.
type Article struct {
	ID               int64            `json:"id"`
	Title            string           `json:"title"`
	ShortDescription string           `json:"shortDescription,omitempty"`
	Slug             string           `json:"slug"`
	Content          ContentStructure `json:"content"`
	HeroImage        *HeroImage       `json:"heroImage,omitempty"`
	MetaDescription  string           `json:"metaDescription,omitempty"`
	MetaKeywords     string           `json:"metaKeywords,omitempty"`
	Status           ArticleStatus    `json:"status"`
	Sections         []Section        `json:"sections,omitempty"`
	ContactInfo      *ContactInfo     `json:"contactInfo,omitempty"`
	Metadata         ArticleMetadata  `json:"metadata"`
	CreatedAt        string           `json:"createdAt"`
	UpdatedAt        string           `json:"updatedAt"`
	PublishedAt      string           `json:"publishedAt,omitempty"`
}
