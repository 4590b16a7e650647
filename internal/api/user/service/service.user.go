package usersvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	basesvc "meta_tube/internal/api/base/service"
	userdto "meta_tube/internal/api/user/dto"
	usermodels "meta_tube/internal/api/user/models"
	"meta_tube/internal/common"
	"meta_tube/internal/global"
	"meta_tube/internal/logger"
)

// UserService là service quản lý người dùng và xác thực
type UserService struct {
	*basesvc.BaseServiceMongoImpl[usermodels.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[usermodels.User](collection),
	}, nil
}

// Register đăng ký tài khoản mới.
// Username được chuẩn hóa về lowercase, password được hash bằng bcrypt trước khi lưu.
func (s *UserService) Register(ctx context.Context, input *userdto.UserRegisterInput) (usermodels.User, error) {
	var zero usermodels.User

	username := strings.ToLower(strings.TrimSpace(input.Username))
	email := strings.ToLower(strings.TrimSpace(input.Email))

	// Kiểm tra trùng username hoặc email trước khi insert
	exists, err := s.DocumentExists(ctx, bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.NewError(common.ErrCodeDatabaseQuery, "Username hoặc email đã được sử dụng", common.StatusConflict, nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return zero, common.NewError(common.ErrCodeInternalServer, "Không hash được mật khẩu", common.StatusInternalServerError, err)
	}

	user := usermodels.User{
		Username: username,
		Email:    email,
		FullName: input.FullName,
		Password: string(hashed),
	}

	created, err := s.InsertOne(ctx, user)
	if err != nil {
		return zero, err
	}

	logger.GetAuditLogger().WithField("user_id", created.ID.Hex()).Info("Đăng ký tài khoản mới")
	created.Password = ""
	created.RefreshToken = ""
	return created, nil
}

// Login xác thực thông tin đăng nhập (username hoặc email) và phát hành cặp token.
// Refresh token được lưu vào document user để có thể thu hồi.
func (s *UserService) Login(ctx context.Context, input *userdto.UserLoginInput) (usermodels.User, *userdto.AuthTokens, error) {
	var zero usermodels.User

	if input.Username == "" && input.Email == "" {
		return zero, nil, common.NewError(common.ErrCodeValidationInput, "Cần cung cấp username hoặc email", common.StatusBadRequest, nil)
	}

	filter := bson.M{"$or": bson.A{
		bson.M{"username": strings.ToLower(input.Username)},
		bson.M{"email": strings.ToLower(input.Email)},
	}}

	user, err := s.FindOne(ctx, filter, nil)
	if err != nil {
		// Không tiết lộ user có tồn tại hay không
		return zero, nil, common.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return zero, nil, common.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, &user)
	if err != nil {
		return zero, nil, err
	}

	logger.GetAuditLogger().WithField("user_id", user.ID.Hex()).Info("Đăng nhập thành công")
	user.Password = ""
	user.RefreshToken = ""
	return user, tokens, nil
}

// RefreshTokens kiểm tra refresh token hợp lệ và khớp với token đang lưu,
// sau đó phát hành cặp token mới (rotation).
func (s *UserService) RefreshTokens(ctx context.Context, refreshToken string) (*userdto.AuthTokens, error) {
	if refreshToken == "" {
		return nil, common.ErrTokenMissing
	}

	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(global.MongoDB_ServerConfig.JwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, common.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, common.ErrTokenInvalid
	}
	idHex, _ := claims["_id"].(string)
	userID, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, common.ErrTokenInvalid
	}

	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return nil, common.ErrTokenInvalid
	}

	// Token gửi lên phải đúng là token đang lưu (đã rotate thì token cũ vô hiệu)
	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return nil, common.ErrTokenExpired
	}

	return s.issueTokens(ctx, &user)
}

// Logout thu hồi refresh token hiện hành của user
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	update := &basesvc.UpdateData{
		Unset: map[string]interface{}{"refreshToken": ""},
	}
	_, err := s.UpdateById(ctx, userID, update)
	if err != nil {
		return err
	}
	logger.GetAuditLogger().WithField("user_id", userID.Hex()).Info("Đăng xuất")
	return nil
}

// ChangePassword đổi mật khẩu sau khi xác thực mật khẩu cũ
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, oldPassword, newPassword string) error {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return common.ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Không hash được mật khẩu", common.StatusInternalServerError, err)
	}

	_, err = s.UpdateById(ctx, userID, bson.M{"password": string(hashed)})
	return err
}

// UpdateAccount cập nhật thông tin hồ sơ (fullName, email)
func (s *UserService) UpdateAccount(ctx context.Context, userID primitive.ObjectID, input *userdto.UpdateAccountInput) (usermodels.User, error) {
	set := map[string]interface{}{}
	if input.FullName != "" {
		set["fullName"] = input.FullName
	}
	if input.Email != "" {
		set["email"] = strings.ToLower(input.Email)
	}
	if len(set) == 0 {
		var zero usermodels.User
		return zero, common.ErrInvalidInput
	}

	user, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return user, err
	}
	user.Password = ""
	user.RefreshToken = ""
	return user, nil
}

// UpdateMedia cập nhật avatar hoặc ảnh bìa và trả về public ID của media cũ
// để caller xóa best-effort trên dịch vụ lưu trữ.
func (s *UserService) UpdateMedia(ctx context.Context, userID primitive.ObjectID, field, url, publicID string) (usermodels.User, string, error) {
	var zero usermodels.User

	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return zero, "", err
	}

	var oldPublicID string
	set := map[string]interface{}{}
	switch field {
	case "avatar":
		oldPublicID = user.AvatarID
		set["avatar"] = url
		set["avatarId"] = publicID
	case "coverImage":
		oldPublicID = user.CoverImageID
		set["coverImage"] = url
		set["coverImageId"] = publicID
	default:
		return zero, "", common.ErrInvalidOperation
	}

	updated, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return zero, "", err
	}
	updated.Password = ""
	updated.RefreshToken = ""
	return updated, oldPublicID, nil
}

// issueTokens phát hành access + refresh token và lưu refresh token vào user
func (s *UserService) issueTokens(ctx context.Context, user *usermodels.User) (*userdto.AuthTokens, error) {
	cfg := global.MongoDB_ServerConfig
	accessTTL := time.Duration(cfg.JwtExpireHours) * time.Hour
	refreshTTL := 10 * 24 * time.Hour

	now := time.Now()
	accessClaims := jwt.MapClaims{
		"_id":      user.ID.Hex(),
		"email":    user.Email,
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(accessTTL).Unix(),
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(cfg.JwtSecret))
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không phát hành được access token", common.StatusInternalServerError, err)
	}

	refreshClaims := jwt.MapClaims{
		"_id": user.ID.Hex(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTL).Unix(),
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(cfg.JwtSecret))
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không phát hành được refresh token", common.StatusInternalServerError, err)
	}

	if _, err := s.UpdateById(ctx, user.ID, bson.M{"refreshToken": refreshToken}); err != nil {
		return nil, err
	}

	return &userdto.AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
