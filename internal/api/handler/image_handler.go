package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fix4home/admin-gateway/internal/core/ports"
	"github.com/fix4home/admin-gateway/internal/credstore"
)

type ImageHandler struct {
	images ports.ImageService
}

func NewImageHandler(images ports.ImageService) *ImageHandler {
	return &ImageHandler{images: images}
}

// Upload forwards a multipart image upload to the upstream. The file travels
// under the "file" field; description and isPublic are optional form fields.
//
// @Summary      Upload an image
// @Tags         images
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image file"
// @Success      201   {object}  domain.Image
// @Failure      400   {object}  map[string]string
// @Router       /admin/images [post]
func (h *ImageHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read uploaded file")
	}
	defer src.Close()

	isPublic := true
	if raw := c.FormValue("isPublic"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "isPublic must be a boolean")
		}
		isPublic = v
	}

	image, err := h.images.Upload(c.Request().Context(), credstore.FromContext(c), ports.UploadImageInput{
		Filename:    fh.Filename,
		File:        src,
		Description: c.FormValue("description"),
		IsPublic:    isPublic,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, image)
}

// List returns a page of images. The upstream pages images from zero, so the
// gateway passes page/size through untouched and treats absence as unset.
func (h *ImageHandler) List(c echo.Context) error {
	in := ports.ListImagesInput{
		Page: intQuery(c, "page", -1),
		Size: intQuery(c, "size", -1),
	}
	if raw := c.QueryParam("isPublic"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "isPublic must be a boolean")
		}
		in.IsPublic = &v
	}

	list, err := h.images.List(c.Request().Context(), credstore.FromContext(c), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

func (h *ImageHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	image, err := h.images.Get(c.Request().Context(), credstore.FromContext(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, image)
}

type updateImageRequest struct {
	Description *string `json:"description" validate:"omitempty,max=500"`
	IsPublic    *bool   `json:"isPublic"`
}

func (h *ImageHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateImageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Description == nil && req.IsPublic == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "nothing to update")
	}

	image, err := h.images.Update(c.Request().Context(), credstore.FromContext(c), id, ports.UpdateImageInput{
		Description: req.Description,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, image)
}

func (h *ImageHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.images.Delete(c.Request().Context(), credstore.FromContext(c), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
