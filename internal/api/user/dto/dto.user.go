package userdto

// UserRegisterInput dữ liệu đầu vào khi đăng ký tài khoản
type UserRegisterInput struct {
	Username string `json:"username" validate:"required,username"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName" validate:"required,no_xss"`
	Password string `json:"password" validate:"required,strong_password"`
}

// UserLoginInput dữ liệu đầu vào khi đăng nhập (username hoặc email + password)
type UserLoginInput struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenInput dữ liệu đầu vào khi làm mới access token
type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken,omitempty"`
}

// ChangePasswordInput dữ liệu đầu vào khi đổi mật khẩu
type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}

// UpdateAccountInput dữ liệu đầu vào khi cập nhật thông tin tài khoản
type UpdateAccountInput struct {
	FullName string `json:"fullName,omitempty" validate:"omitempty,no_xss"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

// UserCreateInput dùng cho base CRUD handler (quản trị)
type UserCreateInput struct {
	Username string `json:"username" validate:"required,username"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName,omitempty"`
	Password string `json:"password" validate:"required,strong_password"`
}

// UserUpdateInput dùng cho base CRUD handler (quản trị)
type UserUpdateInput struct {
	FullName   string `json:"fullName,omitempty"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
	Avatar     string `json:"avatar,omitempty"`
	CoverImage string `json:"coverImage,omitempty"`
}

// AuthTokens cặp token trả về sau đăng nhập / refresh
type AuthTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
