package userhdl

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "meta_tube/internal/api/base/handler"
	userdto "meta_tube/internal/api/user/dto"
	usermodels "meta_tube/internal/api/user/models"
	usersvc "meta_tube/internal/api/user/service"
	"meta_tube/internal/common"
	"meta_tube/internal/global"
	"meta_tube/internal/logger"
	"meta_tube/internal/storage"
)

// UserHandler xử lý các request liên quan đến User (tài khoản, xác thực, kênh)
type UserHandler struct {
	*basehdl.BaseHandler[usermodels.User, userdto.UserCreateInput, userdto.UserUpdateInput]
	UserService *usersvc.UserService
}

// NewUserHandler tạo mới UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := usersvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	hdl := &UserHandler{UserService: userService}
	hdl.BaseHandler = basehdl.NewBaseHandler[usermodels.User, userdto.UserCreateInput, userdto.UserUpdateInput](userService.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleRegister đăng ký tài khoản mới
// @Router /auth/register [post]
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input userdto.UserRegisterInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.UserService.Register(c.Context(), &input)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleLogin đăng nhập và phát hành cặp token.
// Token cũng được set vào cookie httpOnly để client web dùng trực tiếp.
// @Router /auth/login [post]
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input userdto.UserLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, tokens, err := h.UserService.Login(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		setAuthCookies(c, tokens)
		h.HandleResponse(c, fiber.Map{
			"user":         user,
			"accessToken":  tokens.AccessToken,
			"refreshToken": tokens.RefreshToken,
		}, nil)
		return nil
	})
}

// HandleRefreshToken làm mới cặp token từ refresh token (body hoặc cookie)
// @Router /auth/refresh-token [post]
func (h *UserHandler) HandleRefreshToken(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input userdto.RefreshTokenInput
		// Body có thể rỗng khi client chỉ dùng cookie
		_ = h.ParseRequestBody(c, &input)
		if input.RefreshToken == "" {
			input.RefreshToken = c.Cookies("refreshToken")
		}

		tokens, err := h.UserService.RefreshTokens(c.Context(), input.RefreshToken)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		setAuthCookies(c, tokens)
		h.HandleResponse(c, tokens, nil)
		return nil
	})
}

// HandleLogout thu hồi refresh token và xóa cookie
// @Router /users/logout [post]
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.GetUserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.UserService.Logout(c.Context(), userID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		clearAuthCookies(c)
		h.HandleResponse(c, nil, nil)
		return nil
	})
}

// HandleChangePassword đổi mật khẩu của user đang đăng nhập
// @Router /users/change-password [post]
func (h *UserHandler) HandleChangePassword(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.GetUserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input userdto.ChangePasswordInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.UserService.ChangePassword(c.Context(), userID, input.OldPassword, input.NewPassword)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleGetCurrentUser trả về thông tin user đang đăng nhập
// @Router /users/current [get]
func (h *UserHandler) HandleGetCurrentUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.GetUserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.UserService.FindOneById(c.Context(), userID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user.Password = ""
		user.RefreshToken = ""
		h.HandleResponse(c, user, nil)
		return nil
	})
}

// HandleUpdateAccount cập nhật thông tin hồ sơ (fullName, email)
// @Router /users/update-account [put]
func (h *UserHandler) HandleUpdateAccount(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.GetUserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input userdto.UpdateAccountInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.UserService.UpdateAccount(c.Context(), userID, &input)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleUpdateAvatar upload avatar mới lên dịch vụ lưu trữ và xóa avatar cũ (best-effort)
// @Router /users/avatar [patch]
func (h *UserHandler) HandleUpdateAvatar(c fiber.Ctx) error {
	return h.handleUpdateMedia(c, "avatar")
}

// HandleUpdateCoverImage upload ảnh bìa mới lên dịch vụ lưu trữ và xóa ảnh cũ (best-effort)
// @Router /users/cover-image [patch]
func (h *UserHandler) HandleUpdateCoverImage(c fiber.Ctx) error {
	return h.handleUpdateMedia(c, "coverImage")
}

// handleUpdateMedia dùng chung cho avatar và coverImage: nhận multipart file field cùng tên,
// upload, cập nhật user, rồi xóa media cũ trên dịch vụ lưu trữ (lỗi xóa chỉ log).
func (h *UserHandler) handleUpdateMedia(c fiber.Ctx, field string) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.GetUserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		fileHeader, err := c.FormFile(field)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Thiếu file '%s' trong form data", field),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		tempPath, err := storage.SaveTemp(fileHeader, global.MongoDB_ServerConfig.TempUploadDir)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := global.StorageClient.Upload(c.Context(), tempPath, storage.ResourceImage)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, oldPublicID, err := h.UserService.UpdateMedia(c.Context(), userID, field, result.URL, result.PublicID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if oldPublicID != "" {
			if err := global.StorageClient.Delete(c.Context(), oldPublicID, storage.ResourceImage); err != nil {
				logger.GetAppLogger().WithField("public_id", oldPublicID).WithError(err).Warn("Không xóa được media cũ trên dịch vụ lưu trữ")
			}
		}

		h.HandleResponse(c, user, nil)
		return nil
	})
}

// HandleGetChannelProfile lấy hồ sơ kênh theo username kèm số liệu theo dõi
// @Router /users/channel/:username [get]
func (h *UserHandler) HandleGetChannelProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		username := c.Params("username")
		if username == "" {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Username không được để trống", common.StatusBadRequest, nil))
			return nil
		}

		// Viewer có thể chưa đăng nhập khi xem hồ sơ công khai
		viewerID, _ := basehdl.GetUserIDFromContext(c)

		profile, err := h.UserService.GetChannelProfile(c.Context(), username, viewerID)
		h.HandleResponse(c, profile, err)
		return nil
	})
}

// HandleGetWatchHistory trả về lịch sử xem của user đang đăng nhập (có phân trang)
// @Router /users/watch-history [get]
func (h *UserHandler) HandleGetWatchHistory(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.GetUserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		data, err := h.UserService.GetWatchHistory(c.Context(), userID, page, limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleAddWatchHistory ghi nhận user vừa xem một video
// @Router /users/watch-history/:videoId [post]
func (h *UserHandler) HandleAddWatchHistory(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.GetUserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		videoIDHex := c.Params("videoId")
		if !primitive.IsValidObjectID(videoIDHex) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", videoIDHex),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}
		videoID, _ := primitive.ObjectIDFromHex(videoIDHex)

		err = h.UserService.AddWatchHistory(c.Context(), userID, videoID)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// setAuthCookies set access/refresh token vào cookie httpOnly
func setAuthCookies(c fiber.Ctx, tokens *userdto.AuthTokens) {
	accessTTL := time.Duration(global.MongoDB_ServerConfig.JwtExpireHours) * time.Hour
	c.Cookie(&fiber.Cookie{
		Name:     "accessToken",
		Value:    tokens.AccessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Strict",
		MaxAge:   int(accessTTL / time.Second),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refreshToken",
		Value:    tokens.RefreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Strict",
		MaxAge:   int((10 * 24 * time.Hour) / time.Second),
	})
}

// clearAuthCookies xóa cookie token khi logout
func clearAuthCookies(c fiber.Ctx) {
	for _, name := range []string{"accessToken", "refreshToken"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			MaxAge:   -1,
		})
	}
}
