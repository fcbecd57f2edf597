package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fix4home/admin-gateway/internal/core/domain"
	"github.com/fix4home/admin-gateway/internal/core/ports"
	"github.com/fix4home/admin-gateway/internal/credstore"
)

type ArticleHandler struct {
	articles ports.ArticleService
}

func NewArticleHandler(articles ports.ArticleService) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

type createArticleRequest struct {
	Title            string                  `json:"title" validate:"required,max=200"`
	ShortDescription string                  `json:"shortDescription" validate:"max=500"`
	Slug             string                  `json:"slug" validate:"required,max=200"`
	Content          domain.ContentStructure `json:"content"`
	HeroImage        *domain.HeroImage       `json:"heroImage"`
	MetaDescription  string                  `json:"metaDescription" validate:"max=300"`
	MetaKeywords     string                  `json:"metaKeywords" validate:"max=300"`
	Sections         []domain.Section        `json:"sections"`
	ContactInfo      *domain.ContactInfo     `json:"contactInfo"`
}

type updateArticleRequest struct {
	Title            string                   `json:"title" validate:"max=200"`
	ShortDescription string                   `json:"shortDescription" validate:"max=500"`
	Slug             string                   `json:"slug" validate:"max=200"`
	Content          *domain.ContentStructure `json:"content"`
	HeroImage        *domain.HeroImage        `json:"heroImage"`
	MetaDescription  string                   `json:"metaDescription" validate:"max=300"`
	MetaKeywords     string                   `json:"metaKeywords" validate:"max=300"`
	Sections         []domain.Section         `json:"sections"`
	ContactInfo      *domain.ContactInfo      `json:"contactInfo"`
}

// List returns the admin article listing, optionally filtered by status.
func (h *ArticleHandler) List(c echo.Context) error {
	in := ports.ListArticlesInput{
		Status: domain.ArticleStatus(c.QueryParam("status")),
		Page:   intQuery(c, "page", 0),
		Limit:  intQuery(c, "limit", 0),
	}
	if in.Status != "" && !in.Status.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "status must be one of: DRAFT PUBLISHED UNPUBLISHED")
	}

	list, err := h.articles.List(c.Request().Context(), credstore.FromContext(c), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// ListPublished returns the public article listing, useful for previewing
// what visitors currently see.
func (h *ArticleHandler) ListPublished(c echo.Context) error {
	list, err := h.articles.ListPublished(c.Request().Context(), credstore.FromContext(c),
		intQuery(c, "page", 0), intQuery(c, "limit", 0))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Search runs a keyword search over published articles.
func (h *ArticleHandler) Search(c echo.Context) error {
	keyword := c.QueryParam("keyword")
	if keyword == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "keyword is required")
	}

	list, err := h.articles.Search(c.Request().Context(), credstore.FromContext(c),
		keyword, intQuery(c, "page", 0), intQuery(c, "limit", 0))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Get fetches one article through the admin endpoint, so drafts and
// unpublished articles are visible too.
func (h *ArticleHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	article, err := h.articles.Get(c.Request().Context(), credstore.FromContext(c), id, true)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) Create(c echo.Context) error {
	var req createArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	article, err := h.articles.Create(c.Request().Context(), credstore.FromContext(c), ports.CreateArticleInput{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Slug:             req.Slug,
		Content:          req.Content,
		HeroImage:        req.HeroImage,
		MetaDescription:  req.MetaDescription,
		MetaKeywords:     req.MetaKeywords,
		Sections:         req.Sections,
		ContactInfo:      req.ContactInfo,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, article)
}

func (h *ArticleHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	article, err := h.articles.Update(c.Request().Context(), credstore.FromContext(c), id, ports.UpdateArticleInput{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Slug:             req.Slug,
		Content:          req.Content,
		HeroImage:        req.HeroImage,
		MetaDescription:  req.MetaDescription,
		MetaKeywords:     req.MetaKeywords,
		Sections:         req.Sections,
		ContactInfo:      req.ContactInfo,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) Publish(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	article, err := h.articles.Publish(c.Request().Context(), credstore.FromContext(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) Unpublish(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	article, err := h.articles.Unpublish(c.Request().Context(), credstore.FromContext(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.articles.Delete(c.Request().Context(), credstore.FromContext(c), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// pathID parses the :id path parameter, rejecting non-positive values.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	}
	return id, nil
}

// intQuery parses an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func intQuery(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
