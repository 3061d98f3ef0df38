package model

// Announcement 公告表 — 对应 announcements
// Department 为 nil 表示全局公告，对所有院系可见
type Announcement struct {
	BaseModel
	Title      string  `gorm:"type:text;not null;index"        json:"title"`
	Content    string  `gorm:"type:text;not null"              json:"content"`
	AuthorID   string  `gorm:"type:varchar(36);not null;index" json:"author_id"`
	Department *string `gorm:"type:text;index"                 json:"department"`
	Important  bool    `gorm:"not null;default:false"          json:"important"`
	Semester   *string `gorm:"type:text"                       json:"semester"`

	// 关联
	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// TableName 指定表名
func (Announcement) TableName() string { return "announcements" }
