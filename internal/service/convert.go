package service

import (
	"uni-manage/backend/internal/dto"
	"uni-manage/backend/internal/model"
)

// ── 模型 → 响应 DTO ──
// 所有响应都内嵌归属用户（作者 / 主讲 / 教师 / 发送者）

func toUserResponse(u *model.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Department: u.Department,
		Avatar:     u.Avatar,
		Semester:   u.Semester,
		CreatedAt:  u.CreatedAt,
	}
}

func toAnnouncementResponse(a *model.Announcement) *dto.AnnouncementResponse {
	return &dto.AnnouncementResponse{
		ID:         a.ID,
		Title:      a.Title,
		Content:    a.Content,
		Department: a.Department,
		Important:  a.Important,
		Semester:   a.Semester,
		CreatedAt:  a.CreatedAt,
		Author:     toUserResponse(a.Author),
	}
}

func toAssignmentResponse(a *model.Assignment) *dto.AssignmentResponse {
	return &dto.AssignmentResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		DueDate:     a.DueDate,
		Department:  a.Department,
		Subject:     a.Subject,
		Attachments: a.Attachments,
		Semester:    a.Semester,
		CreatedAt:   a.CreatedAt,
		Author:      toUserResponse(a.Author),
	}
}

func toLectureResponse(l *model.Lecture) *dto.LectureResponse {
	return &dto.LectureResponse{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		Date:        l.Date,
		StartTime:   l.StartTime,
		EndTime:     l.EndTime,
		Location:    l.Location,
		Department:  l.Department,
		Subject:     l.Subject,
		Materials:   l.Materials,
		Semester:    l.Semester,
		Professor:   toUserResponse(l.Professor),
	}
}

func toSubjectResponse(s *model.Subject) *dto.SubjectResponse {
	return &dto.SubjectResponse{
		ID:            s.ID,
		Name:          s.Name,
		Code:          s.Code,
		Department:    s.Department,
		Description:   s.Description,
		Semester:      s.Semester,
		Credits:       s.Credits,
		Prerequisites: s.Prerequisites,
		Professor:     toUserResponse(s.Professor),
	}
}

func toChatGroupResponse(g *model.ChatGroup) *dto.ChatGroupResponse {
	return &dto.ChatGroupResponse{
		ID:        g.ID,
		Name:      g.Name,
		SubjectID: g.SubjectID,
		Semester:  g.Semester,
		CreatedAt: g.CreatedAt,
		Teacher:   toUserResponse(g.Teacher),
	}
}

func toMessageResponse(m *model.Message) *dto.MessageResponse {
	return &dto.MessageResponse{
		ID:          m.ID,
		Content:     m.Content,
		ChatGroupID: m.ChatGroupID,
		CreatedAt:   m.CreatedAt,
		Sender:      toUserResponse(m.Sender),
	}
}
