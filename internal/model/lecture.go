package model

// Lecture 课程讲座表 — 对应 lectures
type Lecture struct {
	BaseModel
	Title       string  `gorm:"type:text;not null;index"        json:"title"`
	Description string  `gorm:"type:text;not null"              json:"description"`
	Date        string  `gorm:"type:text;not null;index"        json:"date"`
	StartTime   string  `gorm:"type:text;not null"              json:"start_time"`
	EndTime     string  `gorm:"type:text;not null"              json:"end_time"`
	Location    string  `gorm:"type:text;not null"              json:"location"`
	Department  string  `gorm:"type:text;not null;index"        json:"department"`
	Subject     string  `gorm:"type:text;not null"              json:"subject"`
	ProfessorID string  `gorm:"type:varchar(36);not null;index" json:"professor_id"`
	Materials   *string `gorm:"type:text"                       json:"materials"` // 序列化后的文件路径列表，原样存取
	Semester    string  `gorm:"type:text;not null;index"        json:"semester"`

	// 关联
	Professor *User `gorm:"foreignKey:ProfessorID" json:"professor,omitempty"`
}

// TableName 指定表名
func (Lecture) TableName() string { return "lectures" }
