package service

import "errors"

// ── 业务错误 ──
// Handler 层通过 errors.Is 将其映射为 HTTP 状态码

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailExists          = errors.New("email already registered")
	ErrStudentNotFound      = errors.New("student not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrAssignmentNotFound   = errors.New("assignment not found")
	ErrLectureNotFound      = errors.New("lecture not found")
	ErrSubjectNotFound      = errors.New("subject not found")
	ErrChatGroupNotFound    = errors.New("chat group not found")
)
