package handler

import (
	"net/http"
	"time"

	"github.com/Thiccblique/Tusday.com/internal/model"
	"github.com/Thiccblique/Tusday.com/internal/session"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	stores session.StoreFactory
}

func NewBoardHandler(stores session.StoreFactory) *BoardHandler {
	return &BoardHandler{stores: stores}
}

type BoardRequest struct {
	Name string `json:"name" binding:"required"`
}

type BoardResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func newBoardResponse(b *model.Board) BoardResponse {
	return BoardResponse{
		ID:        b.ID,
		Name:      b.Name,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}
}

// GetAll godoc
// @Summary      List boards, most recently updated first
// @Tags         Boards
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   BoardResponse
// @Router       /boards [get]
func (h *BoardHandler) GetAll(c *gin.Context) {
	store, ok := storeFor(c, h.stores)
	if !ok {
		return
	}

	boards, err := store.Boards.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]BoardResponse, len(boards))
	for i := range boards {
		response[i] = newBoardResponse(&boards[i])
	}
	c.JSON(http.StatusOK, response)
}

// Create godoc
// @Summary      Create a board
// @Tags         Boards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      BoardRequest  true  "Board"
// @Success      201      {object}  BoardResponse
// @Failure      400      {object}  ErrorResponse
// @Router       /boards [post]
func (h *BoardHandler) Create(c *gin.Context) {
	store, ok := storeFor(c, h.stores)
	if !ok {
		return
	}

	var req BoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}

	board, err := store.Boards.Create(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newBoardResponse(board))
}

// Update godoc
// @Summary      Rename a board
// @Tags         Boards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int           true  "Board ID"
// @Param        request  body      BoardRequest  true  "New name"
// @Success      200      {object}  BoardResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /boards/{id} [put]
func (h *BoardHandler) Update(c *gin.Context) {
	store, ok := storeFor(c, h.stores)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req BoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}

	board, err := store.Boards.Rename(c.Request.Context(), id, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBoardResponse(board))
}

// Delete godoc
// @Summary      Delete a board with its columns, tasks and cells
// @Tags         Boards
// @Security     BearerAuth
// @Param        id   path  int  true  "Board ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /boards/{id} [delete]
func (h *BoardHandler) Delete(c *gin.Context) {
	store, ok := storeFor(c, h.stores)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := store.Boards.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
