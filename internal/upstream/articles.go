package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fix4home/admin-gateway/internal/core/domain"
	"github.com/fix4home/admin-gateway/internal/core/ports"
)

// ArticlesClient wraps the upstream article endpoints.
type ArticlesClient struct {
	c *Client
}

func NewArticlesClient(c *Client) *ArticlesClient {
	return &ArticlesClient{c: c}
}

func pageQuery(page, limit int) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}

func (a *ArticlesClient) List(ctx context.Context, store ports.CredentialStore, in ports.ListArticlesInput) (*ports.ArticleList, error) {
	q := pageQuery(in.Page, in.Limit)
	if in.Status != "" {
		q.Set("status", string(in.Status))
	}
	var out ports.ArticleList
	if err := a.c.get(ctx, store, "/articles/admin", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ArticlesClient) ListPublished(ctx context.Context, store ports.CredentialStore, page, limit int) (*ports.ArticleList, error) {
	var out ports.ArticleList
	if err := a.c.get(ctx, store, "/articles", pageQuery(page, limit), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ArticlesClient) Search(ctx context.Context, store ports.CredentialStore, keyword string, page, limit int) (*ports.ArticleList, error) {
	q := pageQuery(page, limit)
	q.Set("keyword", keyword)
	var out ports.ArticleList
	if err := a.c.get(ctx, store, "/articles/search", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get fetches one article; adminAccess selects the admin endpoint, which
// also returns drafts and unpublished articles.
func (a *ArticlesClient) Get(ctx context.Context, store ports.CredentialStore, id int64, adminAccess bool) (*domain.Article, error) {
	path := fmt.Sprintf("/articles/%d", id)
	if adminAccess {
		path = fmt.Sprintf("/articles/admin/%d", id)
	}
	var out domain.Article
	if err := a.c.get(ctx, store, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ArticlesClient) Create(ctx context.Context, store ports.CredentialStore, in ports.CreateArticleInput) (*domain.Article, error) {
	var out domain.Article
	if err := a.c.post(ctx, store, "/articles", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ArticlesClient) Update(ctx context.Context, store ports.CredentialStore, id int64, in ports.UpdateArticleInput) (*domain.Article, error) {
	var out domain.Article
	if err := a.c.put(ctx, store, fmt.Sprintf("/articles/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ArticlesClient) Publish(ctx context.Context, store ports.CredentialStore, id int64) (*domain.Article, error) {
	var out domain.Article
	if err := a.c.post(ctx, store, fmt.Sprintf("/articles/%d/publish", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ArticlesClient) Unpublish(ctx context.Context, store ports.CredentialStore, id int64) (*domain.Article, error) {
	var out domain.Article
	if err := a.c.post(ctx, store, fmt.Sprintf("/articles/%d/unpublish", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ArticlesClient) Delete(ctx context.Context, store ports.CredentialStore, id int64) error {
	return a.c.delete(ctx, store, fmt.Sprintf("/articles/%d", id))
}
