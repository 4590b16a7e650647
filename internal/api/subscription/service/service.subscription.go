package subscriptionsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basemodels "meta_tube/internal/api/base/models"
	basesvc "meta_tube/internal/api/base/service"
	subscriptionmodels "meta_tube/internal/api/subscription/models"
	"meta_tube/internal/common"
	"meta_tube/internal/global"
)

// SubscriptionService là service quản lý theo dõi kênh
type SubscriptionService struct {
	*basesvc.BaseServiceMongoImpl[subscriptionmodels.Subscription]
}

// NewSubscriptionService tạo mới SubscriptionService
func NewSubscriptionService() (*SubscriptionService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Subscriptions)
	if !exist {
		return nil, fmt.Errorf("failed to get subscriptions collection: %v", common.ErrNotFound)
	}

	return &SubscriptionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[subscriptionmodels.Subscription](collection),
	}, nil
}

// ToggleSubscription đảo trạng thái theo dõi của subscriber trên một kênh.
// User không tự theo dõi kênh của chính mình được.
// Hai request đồng thời được unique index (subscriber, channel) chặn.
func (s *SubscriptionService) ToggleSubscription(ctx context.Context, subscriberID, channelID primitive.ObjectID) (subscriptionmodels.ToggleResult, error) {
	if subscriberID == channelID {
		return subscriptionmodels.ToggleResult{}, common.NewError(
			common.ErrCodeBusinessOperation,
			"Không thể tự theo dõi kênh của chính mình",
			common.StatusBadRequest,
			nil,
		)
	}

	// Kênh phải là user có thật, không tạo bản ghi theo dõi tới id rác
	usersCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return subscriptionmodels.ToggleResult{}, common.ErrNotFound
	}
	count, err := usersCol.CountDocuments(ctx, bson.M{"_id": channelID})
	if err != nil {
		return subscriptionmodels.ToggleResult{}, common.ConvertMongoError(err)
	}
	if count == 0 {
		return subscriptionmodels.ToggleResult{}, common.NewError(common.ErrCodeDatabaseQuery, "Kênh không tồn tại", common.StatusNotFound, nil)
	}

	filter := bson.M{"subscriber": subscriberID, "channel": channelID}

	_, err = s.FindOneAndDelete(ctx, filter, nil)
	if err == nil {
		return subscriptionmodels.ToggleResult{Subscribed: false}, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return subscriptionmodels.ToggleResult{}, err
	}

	if _, err := s.InsertOne(ctx, subscriptionmodels.Subscription{
		Subscriber: subscriberID,
		Channel:    channelID,
	}); err != nil {
		if errors.Is(err, common.ErrDuplicate) {
			return subscriptionmodels.ToggleResult{Subscribed: true}, nil
		}
		return subscriptionmodels.ToggleResult{}, err
	}
	return subscriptionmodels.ToggleResult{Subscribed: true}, nil
}

// GetChannelSubscribers liệt kê những người đang theo dõi một kênh, có phân trang
func (s *SubscriptionService) GetChannelSubscribers(ctx context.Context, channelID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[subscriptionmodels.SubscriberEntry], error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"channel": channelID}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}
	pipeline = append(pipeline, basesvc.OwnerLookup(global.MongoDB_ColNames.Users, "subscriber", "subscriber").Stages()...)

	return basesvc.AggregatePaginate[subscriptionmodels.SubscriberEntry](ctx, s.Collection(), pipeline, page, limit)
}

// GetSubscribedChannels liệt kê các kênh mà user đang theo dõi,
// kèm số người theo dõi của từng kênh, có phân trang
func (s *SubscriptionService) GetSubscribedChannels(ctx context.Context, subscriberID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[subscriptionmodels.ChannelEntry], error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"subscriber": subscriberID}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}
	pipeline = append(pipeline, basesvc.OwnerLookup(global.MongoDB_ColNames.Users, "channel", "channel").Stages()...)
	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from": global.MongoDB_ColNames.Subscriptions,
			"let":  bson.M{"channelId": "$channel._id"},
			"pipeline": mongo.Pipeline{
				bson.D{{Key: "$match", Value: bson.M{
					"$expr": bson.M{"$eq": bson.A{"$channel", "$$channelId"}},
				}}},
				bson.D{{Key: "$count", Value: "count"}},
			},
			"as": "channelSubscribers",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"subscriberCount": bson.M{"$ifNull": bson.A{
				bson.M{"$first": "$channelSubscribers.count"},
				0,
			}},
		}}},
	)

	return basesvc.AggregatePaginate[subscriptionmodels.ChannelEntry](ctx, s.Collection(), pipeline, page, limit)
}
