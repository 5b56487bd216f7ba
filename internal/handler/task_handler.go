package handler

import (
	"net/http"

	"github.com/Thiccblique/Tusday.com/internal/model"
	"github.com/Thiccblique/Tusday.com/internal/session"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	stores session.StoreFactory
}

func NewTaskHandler(stores session.StoreFactory) *TaskHandler {
	return &TaskHandler{stores: stores}
}

type UpdateTaskRequest struct {
	Name string `json:"name"`
}

type TaskResponse struct {
	ID       int64  `json:"id"`
	BoardID  int64  `json:"board_id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

func newTaskResponse(t *model.Task) TaskResponse {
	return TaskResponse{
		ID:       t.ID,
		BoardID:  t.BoardID,
		Name:     t.Name,
		Position: t.Position,
	}
}

// GetAll godoc
// @Summary      List the tasks of a board by position
// @Tags         Tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Board ID"
// @Success      200  {array}   TaskResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /boards/{id}/tasks [get]
func (h *TaskHandler) GetAll(c *gin.Context) {
	store, ok := storeFor(c, h.stores)
	if !ok {
		return
	}
	boardID, ok := paramID(c, "id")
	if !ok {
		return
	}

	tasks, err := store.Tasks.List(c.Request.Context(), boardID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]TaskResponse, len(tasks))
	for i := range tasks {
		response[i] = newTaskResponse(&tasks[i])
	}
	c.JSON(http.StatusOK, response)
}

// Create godoc
// @Summary      Add a task named "New Task N" to a board
// @Tags         Tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Board ID"
// @Success      201  {object}  TaskResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /boards/{id}/tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	store, ok := storeFor(c, h.stores)
	if !ok {
		return
	}
	boardID, ok := paramID(c, "id")
	if !ok {
		return
	}

	task, err := store.Tasks.Create(c.Request.Context(), boardID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newTaskResponse(task))
}

// Update godoc
// @Summary      Rename a task; a blank name leaves it unchanged
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                true  "Task ID"
// @Param        request  body      UpdateTaskRequest  true  "New name"
// @Success      200      {object}  TaskResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	store, ok := storeFor(c, h.stores)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}

	task, err := store.Tasks.Rename(c.Request.Context(), id, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTaskResponse(task))
}

// Delete godoc
// @Summary      Delete a task and its cells
// @Tags         Tasks
// @Security     BearerAuth
// @Param        id   path  int  true  "Task ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	store, ok := storeFor(c, h.stores)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := store.Tasks.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
