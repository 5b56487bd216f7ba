package handler

import (
	"net/http"
	"strings"

	"github.com/Thiccblique/Tusday.com/internal/model"
	"github.com/Thiccblique/Tusday.com/internal/session"

	"github.com/gin-gonic/gin"
)

type ColumnHandler struct {
	stores session.StoreFactory
}

func NewColumnHandler(stores session.StoreFactory) *ColumnHandler {
	return &ColumnHandler{stores: stores}
}

type CreateColumnRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required"`
}

type ColumnResponse struct {
	ID       int64  `json:"id"`
	BoardID  int64  `json:"board_id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Position int    `json:"position"`
}

func newColumnResponse(col *model.Column) ColumnResponse {
	return ColumnResponse{
		ID:       col.ID,
		BoardID:  col.BoardID,
		Name:     col.Name,
		Type:     string(col.Type),
		Position: col.Position,
	}
}

// GetAll godoc
// @Summary      List the columns of a board by position
// @Tags         Columns
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Board ID"
// @Success      200  {array}   ColumnResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /boards/{id}/columns [get]
func (h *ColumnHandler) GetAll(c *gin.Context) {
	store, ok := storeFor(c, h.stores)
	if !ok {
		return
	}
	boardID, ok := paramID(c, "id")
	if !ok {
		return
	}

	cols, err := store.Columns.List(c.Request.Context(), boardID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]ColumnResponse, len(cols))
	for i := range cols {
		response[i] = newColumnResponse(&cols[i])
	}
	c.JSON(http.StatusOK, response)
}

// Create godoc
// @Summary      Append a column (text, status or date) to a board
// @Tags         Columns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                  true  "Board ID"
// @Param        request  body      CreateColumnRequest  true  "Column"
// @Success      201      {object}  ColumnResponse
// @Failure      400      {object}  ErrorResponse
// @Router       /boards/{id}/columns [post]
func (h *ColumnHandler) Create(c *gin.Context) {
	store, ok := storeFor(c, h.stores)
	if !ok {
		return
	}
	boardID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}

	typ := model.ColumnType(strings.ToLower(strings.TrimSpace(req.Type)))
	col, err := store.Columns.Create(c.Request.Context(), boardID, req.Name, typ)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newColumnResponse(col))
}

// Delete godoc
// @Summary      Delete a column and its cells
// @Tags         Columns
// @Security     BearerAuth
// @Param        id   path  int  true  "Column ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /columns/{id} [delete]
func (h *ColumnHandler) Delete(c *gin.Context) {
	store, ok := storeFor(c, h.stores)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := store.Columns.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
