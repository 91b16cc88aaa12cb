package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/founderflow/founderflow/internal/modules/serializer"
	"github.com/founderflow/founderflow/internal/modules/service"
)

type NoteHandler struct {
	svc service.NoteService
}

func NewNoteHandler(s service.NoteService) *NoteHandler {
	return &NoteHandler{svc: s}
}

type CreateNoteReq struct {
	Content        string   `json:"content" binding:"required" example:"Kickoff call went well. **Next:** send proposal."`
	ProjectID      string   `json:"project_id" format:"uuid"`
	TaskID         string   `json:"task_id" format:"uuid"`
	MentionedUsers []string `json:"mentioned_users"`
}

type UpdateNoteReq struct {
	Content        *string   `json:"content"`
	ProjectID      *string   `json:"project_id"`
	TaskID         *string   `json:"task_id"`
	MentionedUsers *[]string `json:"mentioned_users"`
}

// ListNotes godoc
//
//	@Summary		List notes
//	@Description	List notes with author name and rendered Markdown
//	@Tags			note
//	@Produce		json
//	@Param			project_id	query	string	false	"Project ID"	Format(uuid)
//	@Param			task_id		query	string	false	"Task ID"		Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Note}
//	@Router			/api/v1/notes [get]
func (h *NoteHandler) ListNotes(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context(), service.ListNotesInput{
		ProjectID: c.Query("project_id"),
		TaskID:    c.Query("task_id"),
	})
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// CreateNote godoc
//
//	@Summary		Create note
//	@Tags			note
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateNoteReq	true	"CreateNote payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Note}
//	@Router			/api/v1/notes [post]
func (h *NoteHandler) CreateNote(c *gin.Context) {
	req := CreateNoteReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	out, err := h.svc.Create(c.Request.Context(), service.CreateNoteInput{
		Content:        req.Content,
		ProjectID:      req.ProjectID,
		TaskID:         req.TaskID,
		MentionedUsers: req.MentionedUsers,
	})
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: out})
}

// UpdateNote godoc
//
//	@Summary		Update note
//	@Tags			note
//	@Accept			json
//	@Produce		json
//	@Param			note_id	path	string					true	"Note ID"	Format(uuid)
//	@Param			payload	body	handler.UpdateNoteReq	true	"UpdateNote payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Note}
//	@Router			/api/v1/notes/{note_id} [patch]
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	id, ok := pathID(c, "note_id")
	if !ok {
		return
	}
	req := UpdateNoteReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	out, err := h.svc.Update(c.Request.Context(), id, service.UpdateNoteInput{
		Content:        req.Content,
		ProjectID:      req.ProjectID,
		TaskID:         req.TaskID,
		MentionedUsers: req.MentionedUsers,
	})
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// DeleteNote godoc
//
//	@Summary		Delete note
//	@Tags			note
//	@Produce		json
//	@Param			note_id	path	string	true	"Note ID"	Format(uuid)
//	@Param			confirm	query	bool	true	"Must be true"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/api/v1/notes/{note_id} [delete]
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	id, ok := pathID(c, "note_id")
	if !ok {
		return
	}
	if !confirmed(c) {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}
