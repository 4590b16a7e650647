package subscriptiondto

// SubscriptionCreateInput dùng cho CRUD chung (tạo subscription từ metadata có sẵn)
type SubscriptionCreateInput struct {
	Subscriber string `json:"subscriber" validate:"required" transform:"str_objectid"` // Người theo dõi
	Channel    string `json:"channel" validate:"required" transform:"str_objectid"`    // Kênh được theo dõi
}

// SubscriptionUpdateInput: subscription không có trường nào sửa được, chỉ tạo/xóa
type SubscriptionUpdateInput struct{}
