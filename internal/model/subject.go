package model

// Subject 科目表 — 对应 subjects
type Subject struct {
	BaseModel
	Name          string  `gorm:"type:text;not null;index"        json:"name"`
	Code          string  `gorm:"type:text;not null;uniqueIndex"  json:"code"`
	Department    string  `gorm:"type:text;not null;index"        json:"department"`
	ProfessorID   string  `gorm:"type:varchar(36);not null;index" json:"professor_id"`
	Description   string  `gorm:"type:text;not null"              json:"description"`
	Semester      string  `gorm:"type:text;not null;index"        json:"semester"`
	Credits       *int    `json:"credits"`
	Prerequisites *string `gorm:"type:text" json:"prerequisites"` // 序列化后的科目代码列表，原样存取

	// 关联
	Professor *User `gorm:"foreignKey:ProfessorID" json:"professor,omitempty"`
}

// TableName 指定表名
func (Subject) TableName() string { return "subjects" }
