package model

// Assignment 作业表 — 对应 assignments
// Department / Semester / Subject 均为自由文本，不是外键
type Assignment struct {
	BaseModel
	Title       string  `gorm:"type:text;not null;index"        json:"title"`
	Description string  `gorm:"type:text;not null"              json:"description"`
	DueDate     string  `gorm:"type:text;not null"              json:"due_date"`
	Department  string  `gorm:"type:text;not null;index"        json:"department"`
	Subject     string  `gorm:"type:text;not null"              json:"subject"`
	AuthorID    string  `gorm:"type:varchar(36);not null;index" json:"author_id"`
	Attachments *string `gorm:"type:text"                       json:"attachments"` // 序列化后的文件路径列表，原样存取
	Semester    string  `gorm:"type:text;not null;index"        json:"semester"`

	// 关联
	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// TableName 指定表名
func (Assignment) TableName() string { return "assignments" }
