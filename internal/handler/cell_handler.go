package handler

import (
	"net/http"
	"sort"

	"github.com/Thiccblique/Tusday.com/internal/controller"
	"github.com/Thiccblique/Tusday.com/internal/notify"
	"github.com/Thiccblique/Tusday.com/internal/repository"
	"github.com/Thiccblique/Tusday.com/internal/session"

	"github.com/gin-gonic/gin"
)

type CellHandler struct {
	stores session.StoreFactory
}

func NewCellHandler(stores session.StoreFactory) *CellHandler {
	return &CellHandler{stores: stores}
}

type SetCellRequest struct {
	Value *string `json:"value" binding:"required"`
}

type CellResponse struct {
	TaskID   int64  `json:"task_id"`
	ColumnID int64  `json:"column_id"`
	Value    string `json:"value"`
}

type TableRowResponse struct {
	Task   TaskResponse     `json:"task"`
	Values map[int64]string `json:"values"`
}

type TableResponse struct {
	Board   BoardResponse      `json:"board"`
	Columns []ColumnResponse   `json:"columns"`
	Rows    []TableRowResponse `json:"rows"`
}

// GetAll godoc
// @Summary      List every stored cell of a board
// @Tags         Cells
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Board ID"
// @Success      200  {array}   CellResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /boards/{id}/cells [get]
func (h *CellHandler) GetAll(c *gin.Context) {
	store, ok := storeFor(c, h.stores)
	if !ok {
		return
	}
	boardID, ok := paramID(c, "id")
	if !ok {
		return
	}

	values, err := store.Cells.ListByBoard(c.Request.Context(), boardID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]CellResponse, 0, len(values))
	for k, v := range values {
		response = append(response, CellResponse{TaskID: k.TaskID, ColumnID: k.ColumnID, Value: v})
	}
	sort.Slice(response, func(i, j int) bool {
		if response[i].TaskID != response[j].TaskID {
			return response[i].TaskID < response[j].TaskID
		}
		return response[i].ColumnID < response[j].ColumnID
	})
	c.JSON(http.StatusOK, response)
}

// Set godoc
// @Summary      Write the cell of a task and column
// @Description  Values are stored as given; date cells are not parsed.
// @Tags         Cells
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id         path      int             true  "Task ID"
// @Param        column_id  path      int             true  "Column ID"
// @Param        request    body      SetCellRequest  true  "Value"
// @Success      200        {object}  CellResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /tasks/{id}/cells/{column_id} [put]
func (h *CellHandler) Set(c *gin.Context) {
	store, taskID, columnID, ok := h.cellParams(c)
	if !ok {
		return
	}

	var req SetCellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}

	if err := store.Cells.Set(c.Request.Context(), taskID, columnID, *req.Value); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, CellResponse{TaskID: taskID, ColumnID: columnID, Value: *req.Value})
}

// Cycle godoc
// @Summary      Advance a status cell: Done, Working On It, Stuck, empty
// @Tags         Cells
// @Produce      json
// @Security     BearerAuth
// @Param        id         path      int  true  "Task ID"
// @Param        column_id  path      int  true  "Column ID"
// @Success      200        {object}  CellResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /tasks/{id}/cells/{column_id}/cycle [post]
func (h *CellHandler) Cycle(c *gin.Context) {
	store, taskID, columnID, ok := h.cellParams(c)
	if !ok {
		return
	}

	next, err := repository.CycleStatus(c.Request.Context(), store.Cells, taskID, columnID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, CellResponse{TaskID: taskID, ColumnID: columnID, Value: next})
}

// Table godoc
// @Summary      Board grid: seeds default columns on first access
// @Tags         Cells
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Board ID"
// @Success      200  {object}  TableResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /boards/{id}/table [get]
func (h *CellHandler) Table(c *gin.Context) {
	store, ok := storeFor(c, h.stores)
	if !ok {
		return
	}
	boardID, ok := paramID(c, "id")
	if !ok {
		return
	}

	board, err := store.Boards.Get(c.Request.Context(), boardID)
	if err != nil {
		respondError(c, err)
		return
	}
	table, err := controller.NewTable(c.Request.Context(), store, *board, notify.Discard)
	if err != nil {
		respondError(c, err)
		return
	}

	grid := table.Grid()
	response := TableResponse{
		Board:   newBoardResponse(&grid.Board),
		Columns: make([]ColumnResponse, len(grid.Columns)),
		Rows:    make([]TableRowResponse, len(grid.Rows)),
	}
	for i := range grid.Columns {
		response.Columns[i] = newColumnResponse(&grid.Columns[i])
	}
	for i, row := range grid.Rows {
		response.Rows[i] = TableRowResponse{Task: newTaskResponse(&row.Task), Values: row.Values}
	}
	c.JSON(http.StatusOK, response)
}

func (h *CellHandler) cellParams(c *gin.Context) (repository.Store, int64, int64, bool) {
	store, ok := storeFor(c, h.stores)
	if !ok {
		return repository.Store{}, 0, 0, false
	}
	taskID, ok := paramID(c, "id")
	if !ok {
		return repository.Store{}, 0, 0, false
	}
	columnID, ok := paramID(c, "column_id")
	if !ok {
		return repository.Store{}, 0, 0, false
	}
	return store, taskID, columnID, true
}
