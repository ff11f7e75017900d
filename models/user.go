package models

import (
	"gorm.io/gorm"
)

// 使用者角色，後台端點依照 token 內的角色宣告判斷權限
const (
	RoleUser       = "USER"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPER_ADMIN"
)

// User 代表書籍交換平台的使用者
// 密碼以 bcrypt 雜湊後儲存，email 與 username 在未刪除的資料列中必須唯一
type User struct {
	gorm.Model

	Username       string `gorm:"type:varchar(255);uniqueIndex:idx_users_username,where:deleted_at IS NULL;not null" json:"username"`
	Email          string `gorm:"type:varchar(255);uniqueIndex:idx_users_email,where:deleted_at IS NULL;not null" json:"email"`
	Password       string `gorm:"type:varchar(255);not null" json:"-"`
	Role           string `gorm:"type:varchar(32);not null;default:USER" json:"role"`
	ProfilePicture string `gorm:"type:varchar(255)" json:"profilePicture"`

	// 外鍵關聯
	Books []Book `gorm:"foreignKey:SellerID" json:"-"`
}

// IsAdmin 回報使用者是否具有後台管理權限
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}
