// Package common - Test taxonomy lỗi: NewError, so sánh errors.Is và quy đổi lỗi MongoDB.
package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestNewError(t *testing.T) {
	err := NewError(ErrCodeValidationInput, "Dữ liệu sai", StatusBadRequest, map[string]string{"field": "title"})

	var appErr *Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, ErrCodeValidationInput.Code, appErr.Code.Code)
	assert.Equal(t, "Dữ liệu sai", appErr.Message)
	assert.Equal(t, "Dữ liệu sai", appErr.Error())
	assert.Equal(t, StatusBadRequest, appErr.StatusCode)
	assert.NotNil(t, appErr.Details)
}

func TestErrorIs(t *testing.T) {
	t.Run("cùng code và message là cùng lỗi", func(t *testing.T) {
		err := NewError(ErrCodeDatabaseQuery, "Không tìm thấy dữ liệu", StatusNotFound, "chi tiết khác")
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("khác message không khớp", func(t *testing.T) {
		err := NewError(ErrCodeDatabaseQuery, "Video không tồn tại", StatusNotFound, nil)
		assert.False(t, errors.Is(err, ErrNotFound))
	})

	t.Run("khác code không khớp", func(t *testing.T) {
		assert.False(t, errors.Is(ErrNotFound, ErrDuplicate))
		assert.False(t, errors.Is(ErrTokenInvalid, ErrTokenExpired))
	})

	t.Run("không khớp lỗi thường", func(t *testing.T) {
		assert.False(t, errors.Is(ErrNotFound, errors.New("Không tìm thấy dữ liệu")))
	})
}

func TestConvertMongoError(t *testing.T) {
	t.Run("nil giữ nguyên nil", func(t *testing.T) {
		assert.NoError(t, ConvertMongoError(nil))
	})

	t.Run("ErrNoDocuments thành ErrNotFound", func(t *testing.T) {
		err := ConvertMongoError(mongo.ErrNoDocuments)
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("lỗi đã quy đổi đi qua nguyên vẹn", func(t *testing.T) {
		original := NewError(ErrCodeBusinessOperation, "Thao tác sai", StatusBadRequest, nil)
		assert.Equal(t, original, ConvertMongoError(original))
	})

	t.Run("duplicate key thành ErrDuplicate", func(t *testing.T) {
		dupErr := mongo.WriteException{
			WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
		}
		err := ConvertMongoError(dupErr)
		// Nơi gọi (toggle like, toggle subscription) bắt đúng sentinel này
		assert.True(t, errors.Is(err, ErrDuplicate), "got: %v", err)
	})

	t.Run("lỗi lạ rơi về lỗi database chung", func(t *testing.T) {
		err := ConvertMongoError(errors.New("something odd"))
		var appErr *Error
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, ErrCodeDatabase.Code, appErr.Code.Code)
		assert.Equal(t, StatusInternalServerError, appErr.StatusCode)
	})
}

func TestConvertMongoError_CommandErrorRanges(t *testing.T) {
	tests := []struct {
		name string
		code int32
		want error
	}{
		{"dải 1xx là lỗi kết nối", 150, ErrMongoConnection},
		{"dải 2xx là lỗi xác thực", 250, ErrMongoAuth},
		{"dải 3xx là lỗi truy vấn", 350, ErrMongoQuery},
		{"dải 4xx là lỗi ghi dữ liệu", 450, ErrMongoWrite},
		{"dải 5xx là lỗi hệ thống", 500, ErrMongoSystem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ConvertMongoError(mongo.CommandError{Code: tt.code, Message: "x"})
			assert.True(t, errors.Is(err, tt.want), "got: %v", err)
		})
	}
}
