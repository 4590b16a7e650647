// Package subscriptionsvc - Test các bước chặn của ToggleSubscription
// trước khi chạm tới dữ liệu: tự theo dõi và kênh không xác định được.
package subscriptionsvc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "meta_tube/internal/api/base/service"
	subscriptionmodels "meta_tube/internal/api/subscription/models"
	"meta_tube/internal/common"
)

// newTestService dựng service trên collection chưa kết nối,
// chỉ dùng cho các nhánh trả lỗi trước khi truy vấn
func newTestService(t *testing.T) *SubscriptionService {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://127.0.0.1:27017"))
	require.NoError(t, err)
	col := client.Database("meta_tube_test").Collection("subscriptions")
	return &SubscriptionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[subscriptionmodels.Subscription](col),
	}
}

func TestToggleSubscription_SelfSubscribe(t *testing.T) {
	s := newTestService(t)
	userID := primitive.NewObjectID()

	_, err := s.ToggleSubscription(context.Background(), userID, userID)

	var appErr *common.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, common.ErrCodeBusinessOperation.Code, appErr.Code.Code)
	assert.Equal(t, "Không thể tự theo dõi kênh của chính mình", appErr.Message)
}

func TestToggleSubscription_ChannelLookupRequired(t *testing.T) {
	// Không đăng ký collection users: bước kiểm tra kênh phải chạy
	// trước khi tạo bản ghi theo dõi và chặn toàn bộ thao tác
	s := newTestService(t)

	_, err := s.ToggleSubscription(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())

	assert.True(t, errors.Is(err, common.ErrNotFound), "got: %v", err)
}
