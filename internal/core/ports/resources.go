package ports

import (
	"context"
	"io"

	"github.com/fix4home/admin-gateway/internal/core/domain"
)

// ListArticlesInput carries the admin article list filters. Zero Page/Limit
// means "let the upstream default apply" and is omitted from the query.
type ListArticlesInput struct {
	Status domain.ArticleStatus
	Page   int
	Limit  int
}

// ArticleList is the one-indexed page shape used for articles and bookings.
type ArticleList struct {
	Articles   []domain.Article `json:"articles"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"totalPages"`
}

// CreateArticleInput is the payload for creating an article.
type CreateArticleInput struct {
	Title            string                  `json:"title"`
	ShortDescription string                  `json:"shortDescription,omitempty"`
	Slug             string                  `json:"slug"`
	Content          domain.ContentStructure `json:"content"`
	HeroImage        *domain.HeroImage       `json:"heroImage,omitempty"`
	MetaDescription  string                  `json:"metaDescription,omitempty"`
	MetaKeywords     string                  `json:"metaKeywords,omitempty"`
	Sections         []domain.Section        `json:"sections,omitempty"`
	ContactInfo      *domain.ContactInfo     `json:"contactInfo,omitempty"`
}

// UpdateArticleInput is the partial-update payload; nil/empty fields are
// omitted from the request body.
type UpdateArticleInput struct {
	Title            string                   `json:"title,omitempty"`
	ShortDescription string                   `json:"shortDescription,omitempty"`
	Slug             string                   `json:"slug,omitempty"`
	Content          *domain.ContentStructure `json:"content,omitempty"`
	HeroImage        *domain.HeroImage        `json:"heroImage,omitempty"`
	MetaDescription  string                   `json:"metaDescription,omitempty"`
	MetaKeywords     string                   `json:"metaKeywords,omitempty"`
	Sections         []domain.Section         `json:"sections,omitempty"`
	ContactInfo      *domain.ContactInfo      `json:"contactInfo,omitempty"`
}

// ArticleService is the typed wrapper over the upstream article endpoints.
type ArticleService interface {
	List(ctx context.Context, store CredentialStore, in ListArticlesInput) (*ArticleList, error)
	ListPublished(ctx context.Context, store CredentialStore, page, limit int) (*ArticleList, error)
	Search(ctx context.Context, store CredentialStore, keyword string, page, limit int) (*ArticleList, error)
	Get(ctx context.Context, store CredentialStore, id int64, adminAccess bool) (*domain.Article, error)
	Create(ctx context.Context, store CredentialStore, in CreateArticleInput) (*domain.Article, error)
	Update(ctx context.Context, store CredentialStore, id int64, in UpdateArticleInput) (*domain.Article, error)
	Publish(ctx context.Context, store CredentialStore, id int64) (*domain.Article, error)
	Unpublish(ctx context.Context, store CredentialStore, id int64) (*domain.Article, error)
	Delete(ctx context.Context, store CredentialStore, id int64) error
}

// ListBookingsInput carries the admin booking list filters.
type ListBookingsInput struct {
	Status domain.BookingStatus
	Page   int
	Limit  int
}

// BookingList is the booking page shape.
type BookingList struct {
	Bookings []domain.Booking `json:"bookings"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
}

// UpdateBookingStatusInput is the status-update payload.
type UpdateBookingStatusInput struct {
	Status domain.BookingStatus `json:"status"`
	Note   string               `json:"note,omitempty"`
}

// BookingService is the typed wrapper over the upstream booking endpoints.
type BookingService interface {
	List(ctx context.Context, store CredentialStore, in ListBookingsInput) (*BookingList, error)
	Get(ctx context.Context, store CredentialStore, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, store CredentialStore, id int64, in UpdateBookingStatusInput) (*domain.Booking, error)
}

// UploadImageInput carries a multipart upload: the file content plus its
// optional metadata fields.
type UploadImageInput struct {
	Filename    string
	File        io.Reader
	Description string
	IsPublic    bool
}

// ListImagesInput uses the upstream's zero-indexed page/size convention.
// Page/Size of -1 mean "unset" and are omitted from the query.
type ListImagesInput struct {
	Page     int
	Size     int
	IsPublic *bool
}

// ImageList mirrors the upstream's Spring Data page shape.
type ImageList struct {
	Content       []domain.Image `json:"content"`
	TotalElements int64          `json:"totalElements"`
	TotalPages    int            `json:"totalPages"`
	Number        int            `json:"number"`
	Size          int            `json:"size"`
	First         bool           `json:"first"`
	Last          bool           `json:"last"`
	Empty         bool           `json:"empty"`
}

// UpdateImageInput is the image metadata update payload.
type UpdateImageInput struct {
	Description *string `json:"description,omitempty"`
	IsPublic    *bool   `json:"isPublic,omitempty"`
}

// ImageService is the typed wrapper over the upstream image endpoints.
type ImageService interface {
	Upload(ctx context.Context, store CredentialStore, in UploadImageInput) (*domain.Image, error)
	List(ctx context.Context, store CredentialStore, in ListImagesInput) (*ImageList, error)
	Get(ctx context.Context, store CredentialStore, id int64) (*domain.Image, error)
	Update(ctx context.Context, store CredentialStore, id int64, in UpdateImageInput) (*domain.Image, error)
	Delete(ctx context.Context, store CredentialStore, id int64) error
}
