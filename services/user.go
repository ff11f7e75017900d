package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bookswap/models"
)

// UserService 負責使用者的註冊、驗證與個人資料維護
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register 建立新使用者
// email 與 username 重複時回傳 ErrConflict，且不會留下任何新資料列
func (s *UserService) Register(username, email, password, profilePicture string) (*models.User, error) {
	const op = "UserService.Register"
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", ErrInvalid)
	}
	var count int64
	if result := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count); result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to check email, err=%w", op, result.Error)
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: email already exists", ErrConflict)
	}
	if result := s.db.Model(&models.User{}).Where("username = ?", username).Count(&count); result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to check username, err=%w", op, result.Error)
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: username already exists", ErrConflict)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to hash password, err=%w", op, err)
	}
	user := models.User{
		Username:       username,
		Email:          email,
		Password:       string(hashed),
		Role:           models.RoleUser,
		ProfilePicture: profilePicture,
	}
	if result := s.db.Create(&user); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email or username already exists", ErrConflict)
		}
		return nil, fmt.Errorf("[%s] Fail to create user, err=%w", op, result.Error)
	}
	return &user, nil
}

// Authenticate 以 email 與密碼驗證使用者，驗證失敗回傳 ErrUnauthorized
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	const op = "UserService.Authenticate"
	var user models.User
	if result := s.db.Where("email = ?", email).First(&user); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
		}
		return nil, fmt.Errorf("[%s] Fail to find user, err=%w", op, result.Error)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	}
	return &user, nil
}

// AuthenticateAdmin 驗證使用者並要求具有後台管理角色
func (s *UserService) AuthenticateAdmin(email, password string) (*models.User, error) {
	user, err := s.Authenticate(email, password)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, fmt.Errorf("%w: admin access required", ErrForbidden)
	}
	return user, nil
}

// FindByEmail 以 email 取得使用者
func (s *UserService) FindByEmail(email string) (*models.User, error) {
	const op = "UserService.FindByEmail"
	var user models.User
	if result := s.db.Where("email = ?", email).First(&user); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
		}
		return nil, fmt.Errorf("[%s] Fail to find user, err=%w", op, result.Error)
	}
	return &user, nil
}

// ProfileUpdate 描述個人資料的部分更新，空字串代表不變更
type ProfileUpdate struct {
	Username       string
	Email          string
	Password       string
	ProfilePicture string
}

// UpdateProfile 更新使用者個人資料，密碼會重新雜湊後儲存
func (s *UserService) UpdateProfile(userID uint, update ProfileUpdate) (*models.User, error) {
	const op = "UserService.UpdateProfile"
	var user models.User
	if result := s.db.First(&user, userID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return nil, fmt.Errorf("[%s] Fail to find user, err=%w", op, result.Error)
	}
	if username := strings.TrimSpace(update.Username); username != "" {
		user.Username = username
	}
	if email := strings.TrimSpace(update.Email); email != "" {
		user.Email = email
	}
	if update.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(update.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("[%s] Fail to hash password, err=%w", op, err)
		}
		user.Password = string(hashed)
	}
	if update.ProfilePicture != "" {
		user.ProfilePicture = update.ProfilePicture
	}
	if result := s.db.Save(&user); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email or username already exists", ErrConflict)
		}
		return nil, fmt.Errorf("[%s] Fail to update user, err=%w", op, result.Error)
	}
	return &user, nil
}

// ListUsers 回傳所有使用者，供後台檢視
func (s *UserService) ListUsers() ([]models.User, error) {
	const op = "UserService.ListUsers"
	var users []models.User
	if result := s.db.Order("created_at ASC").Find(&users); result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to list users, err=%w", op, result.Error)
	}
	return users, nil
}

// UpdateRole 變更使用者角色，僅接受已定義的角色值
func (s *UserService) UpdateRole(userID uint, role string) (*models.User, error) {
	const op = "UserService.UpdateRole"
	switch role {
	case models.RoleUser, models.RoleAdmin, models.RoleSuperAdmin:
	default:
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalid, role)
	}
	var user models.User
	if result := s.db.First(&user, userID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return nil, fmt.Errorf("[%s] Fail to find user, err=%w", op, result.Error)
	}
	user.Role = role
	if result := s.db.Save(&user); result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to update role, err=%w", op, result.Error)
	}
	return &user, nil
}

// PromoteToAdmin 以 email 將使用者升級為管理員
func (s *UserService) PromoteToAdmin(email string) (*models.User, error) {
	user, err := s.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	return s.UpdateRole(user.ID, models.RoleAdmin)
}
