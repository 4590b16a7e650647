package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"meta_tube/internal/common"
	"meta_tube/internal/global"
	"meta_tube/internal/utility"
)

// authCache cache kết quả xác thực token trong thời gian ngắn để giảm truy vấn DB
// trên mỗi request. Key là chuỗi token, value là user ID (hex).
var authCache = utility.NewCache(5*time.Minute, 10*time.Minute)

// AuthMiddleware xác thực JWT access token từ header Authorization (Bearer) hoặc cookie accessToken.
// Khi hợp lệ, gán vào Fiber locals:
//   - "user_id":     primitive.ObjectID của user
//   - "user_id_str": chuỗi hex của user ID (dùng cho audit log)
//
// LƯU Ý: phải đăng ký qua RegisterRouteWithMiddleware / group.Use(), không truyền trực tiếp vào route.
func AuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Cache hit: token đã xác thực gần đây
		if cached, ok := authCache.Get(tokenString); ok {
			if idHex, ok := cached.(string); ok {
				if userID, err := primitive.ObjectIDFromHex(idHex); err == nil {
					c.Locals("user_id", userID)
					c.Locals("user_id_str", idHex)
					return c.Next()
				}
			}
		}

		userID, err := verifyAccessToken(c, tokenString)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		authCache.Set(tokenString, userID.Hex())
		c.Locals("user_id", userID)
		c.Locals("user_id_str", userID.Hex())
		return c.Next()
	}
}

// extractToken lấy token từ header Authorization (Bearer <token>) hoặc cookie accessToken
func extractToken(c fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	return c.Cookies("accessToken")
}

// verifyAccessToken parse và verify JWT, sau đó kiểm tra user còn tồn tại trong DB
func verifyAccessToken(c fiber.Ctx, tokenString string) (primitive.ObjectID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(global.MongoDB_ServerConfig.JwtSecret), nil
	})
	if err != nil {
		if strings.Contains(err.Error(), "expired") {
			return primitive.NilObjectID, common.ErrTokenExpired
		}
		return primitive.NilObjectID, common.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}

	idHex, ok := claims["_id"].(string)
	if !ok || !primitive.IsValidObjectID(idHex) {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}
	userID, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}

	// Kiểm tra user còn tồn tại (tránh token của user đã bị xóa)
	usersCol, exists := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exists {
		return primitive.NilObjectID, common.NewError(common.ErrCodeDatabase, common.MsgDatabaseError, common.StatusInternalServerError, nil)
	}
	count, err := usersCol.CountDocuments(c.Context(), bson.M{"_id": userID})
	if err != nil {
		return primitive.NilObjectID, common.ConvertMongoError(err)
	}
	if count == 0 {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}

	return userID, nil
}
