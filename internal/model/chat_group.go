package model

// ChatGroup 课程群聊表 — 对应 chat_groups
type ChatGroup struct {
	BaseModel
	Name      string `gorm:"type:text;not null;index"        json:"name"`
	SubjectID string `gorm:"type:varchar(36);not null;index" json:"subject_id"`
	TeacherID string `gorm:"type:varchar(36);not null;index" json:"teacher_id"`
	Semester  string `gorm:"type:text;not null;index"        json:"semester"`

	// 关联
	Subject *Subject `gorm:"foreignKey:SubjectID" json:"-"`
	Teacher *User    `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
}

// TableName 指定表名
func (ChatGroup) TableName() string { return "chat_groups" }
