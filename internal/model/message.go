package model

// Message 群聊消息表 — 对应 messages
// 同一群聊内按 created_at 升序排列
type Message struct {
	BaseModel
	Content     string `gorm:"type:text;not null"              json:"content"`
	SenderID    string `gorm:"type:varchar(36);not null;index" json:"sender_id"`
	ChatGroupID string `gorm:"type:varchar(36);not null;index" json:"chat_group_id"`

	// 关联
	Sender    *User      `gorm:"foreignKey:SenderID"    json:"sender,omitempty"`
	ChatGroup *ChatGroup `gorm:"foreignKey:ChatGroupID" json:"-"`
}

// TableName 指定表名
func (Message) TableName() string { return "messages" }
