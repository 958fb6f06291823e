package http

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"catalog-service/internal/item"
	"catalog-service/pkg/response"
)

// List godoc
// @Summary     List items
// @Description Returns all items, optionally narrowed to names containing nameToMatch (case-insensitive).
// @Tags        Items
// @Produce     json
// @Param       nameToMatch query string false "Case-insensitive name fragment"
// @Success     200 {array}  itemResp
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get item
// @Description Returns a single item by its ID.
// @Tags        Items
// @Produce     json
// @Param       id path string true "Item ID" format(uuid)
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.handleError(c, "uc.Detail", err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Create godoc
// @Summary     Create item
// @Description Creates a new item. The id and creation time are assigned by the server.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Item data"
// @Success     201 {object} itemResp
// @Header      201 {string} Location "/items/{id}"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, itemLocation(c, output.Item), h.newCreateResp(output))
}

// Update godoc
// @Summary     Update item
// @Description Replaces name and price of an existing item.
// @Tags        Items
// @Accept      json
// @Param       id   path string    true "Item ID" format(uuid)
// @Param       body body updateReq true "New name and price"
// @Success     204 "No Content"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /items/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if _, err := h.uc.Update(ctx, req.toInput()); err != nil {
		h.handleError(c, "uc.Update", err)
		return
	}

	response.NoContent(c)
}

// Delete godoc
// @Summary     Delete item
// @Description Permanently removes an item by ID.
// @Tags        Items
// @Param       id path string true "Item ID" format(uuid)
// @Success     204 "No Content"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.handleError(c, "uc.Delete", err)
		return
	}

	response.NoContent(c)
}

// handleError renders not-found as a bare 404 and everything else via mapError.
func (h *handler) handleError(c *gin.Context, scope string, err error) {
	ctx := c.Request.Context()
	if errors.Is(err, item.ErrItemNotFound) {
		h.l.Infof(ctx, "%s: %v", scope, err)
		response.NotFound(c)
		return
	}
	h.l.Errorf(ctx, "%s: %v", scope, err)
	response.Error(c, h.mapError(err))
}

// itemLocation points at the Detail route under the group the request came through.
func itemLocation(c *gin.Context, it item.Item) string {
	return strings.TrimSuffix(c.Request.URL.Path, "/") + "/" + it.ID.String()
}
