package http

import (
	"github.com/gin-gonic/gin"

	"library-catalog/internal/middleware"
	"library-catalog/pkg/response"
)

// Create godoc
// @Summary     Create a catalog item
// @Description Registers a new library item. New items start as available.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       body body createReq true "Item payload"
// @Success     201 {object} createResp
// @Failure     400 {object} response.Resp "Validation failed"
// @Failure     409 {object} response.Resp "ITEM_ALREADY_EXISTS"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	input, fieldErrors, err := h.processCreateReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}
	if len(fieldErrors) > 0 {
		response.ValidationError(c, fieldErrors)
		return
	}

	output, err := h.uc.Create(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List catalog items
// @Description Returns one page of the filtered, sorted catalog. All filters
// @Description are optional and combined with AND.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       page                  query int    false "Page number (default 1)"
// @Param       limit                 query int    false "Page size, 1..100 (default 20)"
// @Param       title                 query string false "Substring match on title"
// @Param       author                query string false "Substring match on author"
// @Param       isbn                  query string false "Exact ISBN"
// @Param       item_type             query string false "Exact item type"
// @Param       status                query string false "Exact status"
// @Param       collection            query string false "Exact collection"
// @Param       location_floor        query int    false "Exact floor"
// @Param       location_section      query string false "Exact section"
// @Param       call_number           query string false "Substring match on call number"
// @Param       publication_year_from query int    false "Inclusive lower year bound"
// @Param       publication_year_to   query int    false "Inclusive upper year bound"
// @Param       sort_by               query string false "title|author|publication_date|call_number|created_at|updated_at|item_type|status"
// @Param       sort_order            query string false "asc|desc"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Validation failed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	input, fieldErrors, err := h.processListReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}
	if len(fieldErrors) > 0 {
		response.ValidationError(c, fieldErrors)
		return
	}

	output, err := h.uc.List(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get one catalog item
// @Tags        Items
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id path string true "Item ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "ITEM_NOT_FOUND"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, errMissingID)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Replace a catalog item
// @Description Full replacement: every mutable field is overwritten with the
// @Description supplied payload, status included.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id   path string    true "Item ID"
// @Param       body body updateReq true "Full item payload"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Validation failed"
// @Failure     404 {object} response.Resp "ITEM_NOT_FOUND"
// @Failure     409 {object} response.Resp "ISBN_ALREADY_EXISTS"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	input, fieldErrors, err := h.processUpdateReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}
	if len(fieldErrors) > 0 {
		response.ValidationError(c, fieldErrors)
		return
	}

	output, err := h.uc.Update(ctx, middleware.GetScope(c), input)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Patch godoc
// @Summary     Partially update a catalog item
// @Description Overwrites only the supplied fields. Omitted (null) fields
// @Description keep their stored values; a supplied location replaces the
// @Description whole embedded location.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id   path string   true "Item ID"
// @Param       body body patchReq true "Fields to update"
// @Success     200 {object} patchResp
// @Failure     400 {object} response.Resp "Validation failed"
// @Failure     404 {object} response.Resp "ITEM_NOT_FOUND"
// @Failure     409 {object} response.Resp "ISBN_ALREADY_EXISTS"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items/{id} [PATCH]
func (h *handler) Patch(c *gin.Context) {
	ctx := c.Request.Context()

	input, fieldErrors, err := h.processPatchReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}
	if len(fieldErrors) > 0 {
		response.ValidationError(c, fieldErrors)
		return
	}

	output, err := h.uc.Patch(ctx, middleware.GetScope(c), input)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPatchResp(output))
}

// Delete godoc
// @Summary     Delete a catalog item
// @Description Permanently removes an item. Checked-out items cannot be
// @Description deleted.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id path string true "Item ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "ITEM_NOT_FOUND"
// @Failure     409 {object} response.Resp "CANNOT_DELETE_CHECKED_OUT"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, errMissingID)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
