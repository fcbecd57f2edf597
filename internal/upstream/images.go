package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fix4home/admin-gateway/internal/core/domain"
	"github.com/fix4home/admin-gateway/internal/core/ports"
)

// ImagesClient wraps the upstream image endpoints.
type ImagesClient struct {
	c *Client
}

func NewImagesClient(c *Client) *ImagesClient {
	return &ImagesClient{c: c}
}

// imagePayload tolerates the upstream's two URL field names; fileUrl is
// preferred when both are present.
type imagePayload struct {
	ID          int64  `json:"id"`
	URL         string `json:"url"`
	FileURL     string `json:"fileUrl"`
	Description string `json:"description"`
	IsPublic    *bool  `json:"isPublic"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func (p imagePayload) toDomain() domain.Image {
	u := p.FileURL
	if u == "" {
		u = p.URL
	}
	isPublic := true
	if p.IsPublic != nil {
		isPublic = *p.IsPublic
	}
	return domain.Image{
		ID:          p.ID,
		URL:         u,
		Description: p.Description,
		IsPublic:    isPublic,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// Upload sends a multipart form with fields file, description (optional) and
// isPublic (stringified boolean). It refuses to dispatch without a stored
// token: the upload endpoint rejects anonymous requests anyway, and failing
// locally gives the caller a precise error.
func (i *ImagesClient) Upload(ctx context.Context, store ports.CredentialStore, in ports.UploadImageInput) (*domain.Image, error) {
	if _, ok := store.Get(ports.KeyToken); !ok {
		return nil, domain.ErrNotAuthenticated
	}

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	part, err := w.CreateFormFile("file", in.Filename)
	if err != nil {
		return nil, fmt.Errorf("build multipart form: %w", err)
	}
	if _, err := io.Copy(part, in.File); err != nil {
		return nil, fmt.Errorf("read upload content: %w", err)
	}
	if in.Description != "" {
		if err := w.WriteField("description", in.Description); err != nil {
			return nil, fmt.Errorf("build multipart form: %w", err)
		}
	}
	if err := w.WriteField("isPublic", strconv.FormatBool(in.IsPublic)); err != nil {
		return nil, fmt.Errorf("build multipart form: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("build multipart form: %w", err)
	}

	var payload imagePayload
	err = i.c.Do(ctx, store, http.MethodPost, "/images/upload", nil,
		multipartPayload{body: buf, contentType: w.FormDataContentType()}, &payload)
	if err != nil {
		return nil, err
	}
	img := payload.toDomain()
	return &img, nil
}

func (i *ImagesClient) List(ctx context.Context, store ports.CredentialStore, in ports.ListImagesInput) (*ports.ImageList, error) {
	q := url.Values{}
	if in.Page >= 0 {
		q.Set("page", strconv.Itoa(in.Page))
	}
	if in.Size >= 0 {
		q.Set("size", strconv.Itoa(in.Size))
	}
	if in.IsPublic != nil {
		q.Set("isPublic", strconv.FormatBool(*in.IsPublic))
	}

	var payload struct {
		Content       []imagePayload `json:"content"`
		TotalElements int64          `json:"totalElements"`
		TotalPages    int            `json:"totalPages"`
		Number        int            `json:"number"`
		Size          int            `json:"size"`
		First         bool           `json:"first"`
		Last          bool           `json:"last"`
		Empty         bool           `json:"empty"`
	}
	if err := i.c.get(ctx, store, "/images", q, &payload); err != nil {
		return nil, err
	}

	out := &ports.ImageList{
		Content:       make([]domain.Image, 0, len(payload.Content)),
		TotalElements: payload.TotalElements,
		TotalPages:    payload.TotalPages,
		Number:        payload.Number,
		Size:          payload.Size,
		First:         payload.First,
		Last:          payload.Last,
		Empty:         payload.Empty,
	}
	for _, item := range payload.Content {
		out.Content = append(out.Content, item.toDomain())
	}
	return out, nil
}

func (i *ImagesClient) Get(ctx context.Context, store ports.CredentialStore, id int64) (*domain.Image, error) {
	var payload imagePayload
	if err := i.c.get(ctx, store, fmt.Sprintf("/images/%d", id), nil, &payload); err != nil {
		return nil, err
	}
	img := payload.toDomain()
	return &img, nil
}

func (i *ImagesClient) Update(ctx context.Context, store ports.CredentialStore, id int64, in ports.UpdateImageInput) (*domain.Image, error) {
	var payload imagePayload
	if err := i.c.put(ctx, store, fmt.Sprintf("/images/%d", id), in, &payload); err != nil {
		return nil, err
	}
	img := payload.toDomain()
	return &img, nil
}

func (i *ImagesClient) Delete(ctx context.Context, store ports.CredentialStore, id int64) error {
	return i.c.delete(ctx, store, fmt.Sprintf("/images/%d", id))
}
