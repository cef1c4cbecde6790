package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/item"
	"library-catalog/pkg/validator"
)

var errMissingID = errors.New("id is required")

// processCreateReq binds the create body and evaluates every field rule.
// All violations are collected before returning.
func (h *handler) processCreateReq(c *gin.Context) (item.CreateItemInput, []validator.FieldError, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return item.CreateItemInput{}, nil, err
	}

	v := validator.New()
	input := req.toInput(v)
	for _, fe := range item.ValidateCreateInput(input) {
		v.AddError(fe.Field, fe.Message)
	}
	if !v.Valid() {
		return item.CreateItemInput{}, v.Errors(), nil
	}
	return input, nil, nil
}

// processListReq binds the list query parameters and validates them.
func (h *handler) processListReq(c *gin.Context) (item.ListItemsInput, []validator.FieldError, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return item.ListItemsInput{}, nil, err
	}

	input := req.toInput()
	if fieldErrors := item.ValidateListInput(input); len(fieldErrors) > 0 {
		return item.ListItemsInput{}, fieldErrors, nil
	}
	return input, nil, nil
}

// processUpdateReq binds the full-replace body plus the URI param.
func (h *handler) processUpdateReq(c *gin.Context) (item.UpdateItemInput, []validator.FieldError, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return item.UpdateItemInput{}, nil, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return item.UpdateItemInput{}, nil, errMissingID
	}

	v := validator.New()
	input := req.toInput(v)
	for _, fe := range item.ValidateUpdateInput(input) {
		v.AddError(fe.Field, fe.Message)
	}
	if !v.Valid() {
		return item.UpdateItemInput{}, v.Errors(), nil
	}
	return input, nil, nil
}

// processPatchReq binds the partial-update body plus the URI param. Only
// supplied fields are validated.
func (h *handler) processPatchReq(c *gin.Context) (item.PatchItemInput, []validator.FieldError, error) {
	var req patchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return item.PatchItemInput{}, nil, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return item.PatchItemInput{}, nil, errMissingID
	}

	v := validator.New()
	input := req.toInput(v)
	for _, fe := range item.ValidatePatchInput(input) {
		v.AddError(fe.Field, fe.Message)
	}
	if !v.Valid() {
		return item.PatchItemInput{}, v.Errors(), nil
	}
	return input, nil, nil
}
