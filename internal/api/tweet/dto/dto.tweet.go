package tweetdto

// TweetCreateInput là nội dung tạo tweet mới
type TweetCreateInput struct {
	Content string `json:"content" validate:"required,min=1,max=500,no_xss"` // Nội dung tweet
}

// TweetUpdateInput là nội dung sửa tweet
type TweetUpdateInput struct {
	Content string `json:"content" validate:"required,min=1,max=500,no_xss"` // Nội dung mới
}
